package repositories

import (
	"time"

	"moto_portal/internal/models"

	"gorm.io/gorm"
)

type ImportLogRepository interface {
	Create(db *gorm.DB, log *models.ImportLog) error
	FindByModel(db *gorm.DB, modelID uint, limit int) ([]models.ImportLog, error)
	DeleteOlderThan(db *gorm.DB, before time.Time) (int64, error)
}

type ImportLogRepositoryImpl struct{}

func NewImportLogRepository() ImportLogRepository {
	return &ImportLogRepositoryImpl{}
}

func (r *ImportLogRepositoryImpl) Create(db *gorm.DB, log *models.ImportLog) error {
	return db.Create(log).Error
}

func (r *ImportLogRepositoryImpl) FindByModel(db *gorm.DB, modelID uint, limit int) ([]models.ImportLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var logs []models.ImportLog
	err := db.Where("model_id = ?", modelID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// DeleteOlderThan удаляет записи журнала, созданные раньше before
func (r *ImportLogRepositoryImpl) DeleteOlderThan(db *gorm.DB, before time.Time) (int64, error) {
	result := db.Where("created_at < ?", before).Delete(&models.ImportLog{})
	return result.RowsAffected, result.Error
}
