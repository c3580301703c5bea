package models

import "time"

// News - новость портала
type News struct {
	BaseModelWithUpdated
	Title       string     `gorm:"size:255;not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Summary     *string    `gorm:"type:text" json:"summary"`
	Author      *string    `gorm:"size:255" json:"author"`
	IsPublished bool       `gorm:"not null" json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`

	Photos    []NewsPhoto    `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
	Documents []NewsDocument `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
}

func (News) TableName() string { return "news" }

type NewsPhoto struct {
	BaseModel
	NewsID uint `gorm:"not null;index" json:"news_id"`
	FileAsset
}

func (NewsPhoto) TableName() string { return "news_photos" }

type NewsDocument struct {
	BaseModel
	NewsID uint `gorm:"not null;index" json:"news_id"`
	FileAsset
}

func (NewsDocument) TableName() string { return "news_documents" }

// Regulation - регламент
type Regulation struct {
	BaseModelWithUpdated
	Title       string     `gorm:"size:255;not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Summary     *string    `gorm:"type:text" json:"summary"`
	Category    *string    `gorm:"size:100;index" json:"category"`
	IsPublished bool       `gorm:"not null" json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`

	Photos    []RegulationPhoto    `gorm:"foreignKey:RegulationID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
	Documents []RegulationDocument `gorm:"foreignKey:RegulationID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
}

func (Regulation) TableName() string { return "regulations" }

type RegulationPhoto struct {
	BaseModel
	RegulationID uint `gorm:"not null;index" json:"regulation_id"`
	FileAsset
}

func (RegulationPhoto) TableName() string { return "regulation_photos" }

type RegulationDocument struct {
	BaseModel
	RegulationID uint `gorm:"not null;index" json:"regulation_id"`
	FileAsset
}

func (RegulationDocument) TableName() string { return "regulation_documents" }
