package repositories

import (
	"errors"

	"moto_portal/internal/models"

	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(db *gorm.DB, video *models.ModelVideo) error
	FindByID(db *gorm.DB, id uint) (*models.ModelVideo, error)
	FindByModel(db *gorm.DB, modelID uint) ([]models.ModelVideo, error)
	Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.ModelVideo, error)
	Delete(db *gorm.DB, id uint) error
	Reorder(db *gorm.DB, modelID uint, videoIDs []uint) error
}

type VideoRepositoryImpl struct{}

func NewVideoRepository() VideoRepository {
	return &VideoRepositoryImpl{}
}

func (r *VideoRepositoryImpl) Create(db *gorm.DB, video *models.ModelVideo) error {
	if video.SortOrder == 0 {
		next, err := NextSortOrder(db, &models.ModelVideo{}, "model_id", video.ModelID)
		if err != nil {
			return err
		}
		video.SortOrder = next
	}
	return db.Create(video).Error
}

func (r *VideoRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.ModelVideo, error) {
	var video models.ModelVideo
	if err := db.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepositoryImpl) FindByModel(db *gorm.DB, modelID uint) ([]models.ModelVideo, error) {
	var videos []models.ModelVideo
	err := db.Where("model_id = ?", modelID).
		Order("sort_order ASC, id ASC").
		Find(&videos).Error
	return videos, err
}

func (r *VideoRepositoryImpl) Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.ModelVideo, error) {
	video, err := r.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(video).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(db, id)
}

func (r *VideoRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.ModelVideo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

func (r *VideoRepositoryImpl) Reorder(db *gorm.DB, modelID uint, videoIDs []uint) error {
	return Reorder(db, &models.ModelVideo{}, "model_id", modelID, videoIDs)
}
