package models

import (
	"time"

	"gorm.io/datatypes"
)

// Section - раздел портала, который админ может скрыть
type Section string

const (
	SectionNews        Section = "news"
	SectionRegulations Section = "regulations"
	SectionEmployees   Section = "employees"
)

var AllSections = []Section{SectionNews, SectionRegulations, SectionEmployees}

func (s Section) IsValid() bool {
	switch s {
	case SectionNews, SectionRegulations, SectionEmployees:
		return true
	}
	return false
}

// SectionVisibility - строка на раздел; отсутствие строки = раздел виден
type SectionVisibility struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SectionName Section   `gorm:"size:50;uniqueIndex;not null" json:"section_name"`
	IsVisible   bool      `gorm:"not null" json:"is_visible"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SectionVisibility) TableName() string { return "section_visibility" }

// ImportLog - история импорта характеристик из таблиц
type ImportLog struct {
	BaseModel
	ModelID         uint           `gorm:"not null;index" json:"model_id"`
	Filename        string         `gorm:"size:255" json:"filename"`
	ReplaceExisting bool           `gorm:"not null" json:"replace_existing"`
	Imported        int            `gorm:"not null" json:"imported"`
	Updated         int            `gorm:"not null" json:"updated"`
	Skipped         int            `gorm:"not null" json:"skipped"`
	Details         datatypes.JSON `json:"details"`
}

func (ImportLog) TableName() string { return "import_logs" }
