package repositories

import (
	"errors"

	"moto_portal/internal/models"

	"gorm.io/gorm"
)

type PhotoRepository interface {
	// Create добавляет фото в конец коллекции (sort_order = MAX+1)
	Create(db *gorm.DB, photo *models.ModelPhoto) error
	FindByID(db *gorm.DB, id uint) (*models.ModelPhoto, error)
	FindByModel(db *gorm.DB, modelID uint) ([]models.ModelPhoto, error)
	Delete(db *gorm.DB, id uint) error
	Reorder(db *gorm.DB, modelID uint, photoIDs []uint) error

	// SetPrimary делает фото единственным основным в своей коллекции.
	// Один условный UPDATE: сброс и установка флага в одном операторе.
	SetPrimary(db *gorm.DB, photo *models.ModelPhoto) error
}

type PhotoRepositoryImpl struct{}

func NewPhotoRepository() PhotoRepository {
	return &PhotoRepositoryImpl{}
}

func (r *PhotoRepositoryImpl) Create(db *gorm.DB, photo *models.ModelPhoto) error {
	next, err := NextSortOrder(db, &models.ModelPhoto{}, "model_id", photo.ModelID)
	if err != nil {
		return err
	}
	photo.SortOrder = next
	return db.Create(photo).Error
}

func (r *PhotoRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.ModelPhoto, error) {
	var photo models.ModelPhoto
	if err := db.First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) FindByModel(db *gorm.DB, modelID uint) ([]models.ModelPhoto, error) {
	var photos []models.ModelPhoto
	err := db.Where("model_id = ?", modelID).
		Order("sort_order ASC, id ASC").
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.ModelPhoto{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepositoryImpl) Reorder(db *gorm.DB, modelID uint, photoIDs []uint) error {
	return Reorder(db, &models.ModelPhoto{}, "model_id", modelID, photoIDs)
}

func (r *PhotoRepositoryImpl) SetPrimary(db *gorm.DB, photo *models.ModelPhoto) error {
	err := db.Model(&models.ModelPhoto{}).
		Where("model_id = ?", photo.ModelID).
		Update("is_primary", gorm.Expr("CASE WHEN id = ? THEN ? ELSE ? END", photo.ID, true, false)).Error
	if err != nil {
		return err
	}
	photo.IsPrimary = true
	return nil
}
