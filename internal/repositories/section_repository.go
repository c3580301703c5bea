package repositories

import (
	"moto_portal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SectionRepository interface {
	// IsVisible: нет строки - раздел виден
	IsVisible(db *gorm.DB, section models.Section) (bool, error)
	All(db *gorm.DB) (map[models.Section]bool, error)
	SetVisible(db *gorm.DB, section models.Section, visible bool) error
}

type SectionRepositoryImpl struct{}

func NewSectionRepository() SectionRepository {
	return &SectionRepositoryImpl{}
}

func (r *SectionRepositoryImpl) IsVisible(db *gorm.DB, section models.Section) (bool, error) {
	var rows []models.SectionVisibility
	if err := db.Where("section_name = ?", section).Limit(1).Find(&rows).Error; err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return true, nil
	}
	return rows[0].IsVisible, nil
}

func (r *SectionRepositoryImpl) All(db *gorm.DB) (map[models.Section]bool, error) {
	result := make(map[models.Section]bool, len(models.AllSections))
	for _, s := range models.AllSections {
		result[s] = true
	}

	var rows []models.SectionVisibility
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.SectionName.IsValid() {
			result[row.SectionName] = row.IsVisible
		}
	}
	return result, nil
}

func (r *SectionRepositoryImpl) SetVisible(db *gorm.DB, section models.Section, visible bool) error {
	row := models.SectionVisibility{SectionName: section, IsVisible: visible}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_visible", "updated_at"}),
	}).Create(&row).Error
}
