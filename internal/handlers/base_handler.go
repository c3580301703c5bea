package handlers

import (
	"fmt"
	"mime/multipart"
	"strconv"

	"moto_portal/internal/logger"
	"moto_portal/internal/services"
	"moto_portal/internal/validator"
	"moto_portal/pkg/apperrors"
	"moto_portal/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// ============================================================================
// 2. DB из контекста
// ============================================================================

// GetDB извлекает *gorm.DB из gin.Context; ключ ставит DBMiddleware
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// ============================================================================
// 3. Привязка и валидация
// ============================================================================

// BindAndValidate_JSON привязывает тело по Content-Type (JSON или multipart-форма)
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InvalidInput("Invalid request body: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InvalidInput("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ============================================================================
// 4. Обработка ошибок сервисов
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.IsServerError() {
			logger.CtxWithError(ctx, "Service failure", err, "path", c.Request.URL.Path)
		} else {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"details", appErr.Details,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// ============================================================================
// 5. Файлы
// ============================================================================

// OpenFormFile открывает файл из multipart-поля. Вызывающий закрывает файл.
func (h *BaseHandler) OpenFormFile(c *gin.Context, field string) (services.FileInput, multipart.File, bool) {
	header, err := c.FormFile(field)
	if err != nil {
		apperrors.HandleError(c, apperrors.InvalidInput("Missing file field: "+field))
		return services.FileInput{}, nil, false
	}

	f, err := header.Open()
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to open uploaded file", err, "filename", header.Filename)
		apperrors.HandleError(c, apperrors.InvalidInput("Uploaded file cannot be read"))
		return services.FileInput{}, nil, false
	}

	return services.FileInput{Filename: header.Filename, Content: f}, f, true
}

// ============================================================================
// 6. Функции парсинга
// ============================================================================

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParseParamID читает положительный целый идентификатор из пути
func ParseParamID(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	if valueStr == "" {
		return 0, apperrors.InvalidInput("Missing required path parameter: " + key)
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil || value == 0 {
		return 0, apperrors.InvalidInput("Invalid path parameter: " + key + " is not a positive integer")
	}
	return uint(value), nil
}

// paramID - ParseParamID с ответом об ошибке
func (h *BaseHandler) paramID(c *gin.Context, key string) (uint, bool) {
	id, err := ParseParamID(c, key)
	if err != nil {
		apperrors.HandleError(c, err)
		return 0, false
	}
	return id, true
}
