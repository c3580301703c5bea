package models

import "time"

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type BaseModelWithUpdated struct {
	BaseModel
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// FileAsset - общие поля файла, привязанного к родительской сущности.
// FilePath относительный (категория/подпапка + сгенерированное имя).
type FileAsset struct {
	Filename         string `gorm:"size:255;not null" json:"filename"`
	OriginalFilename string `gorm:"size:255" json:"original_filename"`
	FilePath         string `gorm:"size:500;not null" json:"file_path"`
	FileSize         int64  `json:"file_size"`
	SortOrder        int    `gorm:"not null;default:0;index" json:"sort_order"`
}

// StoredPath - относительный путь файла в хранилище
func (a FileAsset) StoredPath() string {
	return a.FilePath
}
