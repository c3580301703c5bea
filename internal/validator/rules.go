package validator

import (
	"log"

	"moto_portal/internal/models"

	"github.com/go-playground/validator/v10"
)

// Категории загрузки = подпапки в корне загрузок
var UploadCategories = []string{"models", "news", "employees", "regulations"}

// Поддерживаемые площадки видео
var VideoTypes = []string{"youtube", "vk", "instagram", "tiktok"}

// registerCustomRules регистрирует кастомные функции валидации.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Без правила приложение не должно запускаться
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-upload-category", oneOfStrings(UploadCategories))
	mustRegister("is-video-type", oneOfStrings(VideoTypes))
	mustRegister("is-section", validateSection)
}

// IsUploadCategory - проверка категории вне DTO (multipart-формы)
func IsUploadCategory(value string) bool {
	for _, c := range UploadCategories {
		if c == value {
			return true
		}
	}
	return false
}

func oneOfStrings(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true // пустые обрабатывает 'required'
		}
		for _, a := range allowed {
			if a == value {
				return true
			}
		}
		return false
	}
}

func validateSection(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.Section(value).IsValid()
}
