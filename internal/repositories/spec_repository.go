package repositories

import (
	"errors"

	"moto_portal/internal/models"

	"gorm.io/gorm"
)

type SpecRepository interface {
	// Create: при SortOrder == 0 характеристика добавляется в конец
	Create(db *gorm.DB, spec *models.ModelSpec) error
	// Insert сохраняет характеристику с заданным sort_order как есть
	Insert(db *gorm.DB, spec *models.ModelSpec) error
	FindByID(db *gorm.DB, id uint) (*models.ModelSpec, error)
	FindByModel(db *gorm.DB, modelID uint, filter SpecFilter) ([]models.ModelSpec, error)
	// FindByName ищет точное совпадение имени (с учётом регистра); nil если нет
	FindByName(db *gorm.DB, modelID uint, name string) (*models.ModelSpec, error)
	CountByModel(db *gorm.DB, modelID uint) (int64, error)
	Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.ModelSpec, error)
	Delete(db *gorm.DB, id uint) error
	DeleteByModel(db *gorm.DB, modelID uint) (int64, error)
	Reorder(db *gorm.DB, modelID uint, specIDs []uint) error
}

type SpecFilter struct {
	Category string
	Search   string
}

type SpecRepositoryImpl struct{}

func NewSpecRepository() SpecRepository {
	return &SpecRepositoryImpl{}
}

func (r *SpecRepositoryImpl) Create(db *gorm.DB, spec *models.ModelSpec) error {
	if spec.SortOrder == 0 {
		next, err := NextSortOrder(db, &models.ModelSpec{}, "model_id", spec.ModelID)
		if err != nil {
			return err
		}
		spec.SortOrder = next
	}
	return db.Create(spec).Error
}

func (r *SpecRepositoryImpl) Insert(db *gorm.DB, spec *models.ModelSpec) error {
	return db.Create(spec).Error
}

func (r *SpecRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.ModelSpec, error) {
	var spec models.ModelSpec
	if err := db.First(&spec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecNotFound
		}
		return nil, err
	}
	return &spec, nil
}

func (r *SpecRepositoryImpl) FindByModel(db *gorm.DB, modelID uint, filter SpecFilter) ([]models.ModelSpec, error) {
	var specs []models.ModelSpec

	query := db.Where("model_id = ?", modelID)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(spec_name) LIKE LOWER(?) OR LOWER(spec_value) LIKE LOWER(?)", pattern, pattern)
	}

	err := query.Order("sort_order ASC, spec_name ASC").Find(&specs).Error
	return specs, err
}

func (r *SpecRepositoryImpl) FindByName(db *gorm.DB, modelID uint, name string) (*models.ModelSpec, error) {
	var specs []models.ModelSpec
	err := db.Where("model_id = ? AND spec_name = ?", modelID, name).
		Order("id ASC").Limit(1).
		Find(&specs).Error
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, nil
	}
	return &specs[0], nil
}

func (r *SpecRepositoryImpl) CountByModel(db *gorm.DB, modelID uint) (int64, error) {
	var count int64
	err := db.Model(&models.ModelSpec{}).Where("model_id = ?", modelID).Count(&count).Error
	return count, err
}

func (r *SpecRepositoryImpl) Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.ModelSpec, error) {
	spec, err := r.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(spec).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(db, id)
}

func (r *SpecRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.ModelSpec{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSpecNotFound
	}
	return nil
}

func (r *SpecRepositoryImpl) DeleteByModel(db *gorm.DB, modelID uint) (int64, error) {
	result := db.Where("model_id = ?", modelID).Delete(&models.ModelSpec{})
	return result.RowsAffected, result.Error
}

func (r *SpecRepositoryImpl) Reorder(db *gorm.DB, modelID uint, specIDs []uint) error {
	return Reorder(db, &models.ModelSpec{}, "model_id", modelID, specIDs)
}
