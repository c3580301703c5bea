package repositories

import (
	"errors"

	"moto_portal/internal/models"

	"gorm.io/gorm"
)

type ModelRepository interface {
	Create(db *gorm.DB, model *models.Model) error
	FindByID(db *gorm.DB, id uint) (*models.Model, error)
	FindByIDWithRelations(db *gorm.DB, id uint, activeOnly bool) (*models.Model, error)
	FindAll(db *gorm.DB, filter ModelFilter) ([]models.Model, error)
	FindBySpecs(db *gorm.DB, specFilters map[string]string) ([]models.Model, error)
	Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Model, error)
	Exists(db *gorm.DB, id uint) (bool, error)

	// DeleteCascade удаляет модель вместе с фото, характеристиками и видео.
	// Возвращает удалённые фото, чтобы вызывающий удалил их файлы после коммита.
	// Вызывать внутри транзакции.
	DeleteCascade(db *gorm.DB, id uint) ([]models.ModelPhoto, error)
}

type ModelFilter struct {
	Pagination
	Search        string
	IsActive      *bool
	WithRelations bool
}

type ModelRepositoryImpl struct{}

func NewModelRepository() ModelRepository {
	return &ModelRepositoryImpl{}
}

func (r *ModelRepositoryImpl) Create(db *gorm.DB, model *models.Model) error {
	return db.Create(model).Error
}

func (r *ModelRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Model, error) {
	var model models.Model
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	return &model, nil
}

func (r *ModelRepositoryImpl) FindByIDWithRelations(db *gorm.DB, id uint, activeOnly bool) (*models.Model, error) {
	var model models.Model
	query := preloadChildren(db)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	return &model, nil
}

func (r *ModelRepositoryImpl) FindAll(db *gorm.DB, filter ModelFilter) ([]models.Model, error) {
	var list []models.Model
	p := filter.Pagination.normalized()

	query := db.Model(&models.Model{})
	if filter.WithRelations {
		query = preloadChildren(query)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	err := query.Order("sort_order ASC, name ASC").
		Offset(p.Skip).Limit(p.Limit).
		Find(&list).Error
	return list, err
}

// FindBySpecs - активные модели, у которых для каждого фильтра есть характеристика
// с таким именем и значением, содержащим подстроку.
func (r *ModelRepositoryImpl) FindBySpecs(db *gorm.DB, specFilters map[string]string) ([]models.Model, error) {
	var list []models.Model

	query := preloadChildren(db).Where("is_active = ?", true)
	for name, value := range specFilters {
		sub := db.Model(&models.ModelSpec{}).
			Select("model_id").
			Where("spec_name = ? AND LOWER(spec_value) LIKE LOWER(?)", name, likePattern(value))
		query = query.Where("id IN (?)", sub)
	}

	err := query.Order("sort_order ASC, name ASC").Find(&list).Error
	return list, err
}

func (r *ModelRepositoryImpl) Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Model, error) {
	model, err := r.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(model).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(db, id)
}

func (r *ModelRepositoryImpl) Exists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&models.Model{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ModelRepositoryImpl) DeleteCascade(db *gorm.DB, id uint) ([]models.ModelPhoto, error) {
	if _, err := r.FindByID(db, id); err != nil {
		return nil, err
	}

	var photos []models.ModelPhoto
	if err := db.Where("model_id = ?", id).Find(&photos).Error; err != nil {
		return nil, err
	}

	if err := db.Where("model_id = ?", id).Delete(&models.ModelPhoto{}).Error; err != nil {
		return nil, err
	}
	if err := db.Where("model_id = ?", id).Delete(&models.ModelSpec{}).Error; err != nil {
		return nil, err
	}
	if err := db.Where("model_id = ?", id).Delete(&models.ModelVideo{}).Error; err != nil {
		return nil, err
	}
	if err := db.Delete(&models.Model{}, id).Error; err != nil {
		return nil, err
	}

	return photos, nil
}

func preloadChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		Preload("Specs", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, spec_name ASC") }).
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") })
}
