package models

// Model - модель мотоцикла
type Model struct {
	BaseModelWithUpdated
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Category    *string `gorm:"size:100" json:"category"`
	SalesScript *string `gorm:"type:text" json:"sales_script"`
	IsActive    bool    `gorm:"not null" json:"is_active"`
	SortOrder   int     `gorm:"not null;default:0" json:"sort_order"`

	// Relations (удаляются явно в репозитории, в той же транзакции)
	Photos []ModelPhoto `gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
	Specs  []ModelSpec  `gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE" json:"specs,omitempty"`
	Videos []ModelVideo `gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE" json:"videos,omitempty"`
}

func (Model) TableName() string { return "models" }

// ModelPhoto - фотография модели; is_primary не более чем у одной на модель
type ModelPhoto struct {
	BaseModel
	ModelID uint `gorm:"not null;index" json:"model_id"`
	FileAsset
	IsPrimary bool `gorm:"not null;default:false" json:"is_primary"`
}

func (ModelPhoto) TableName() string { return "model_photos" }

// ModelSpec - техническая характеристика. Уникальность (model_id, spec_name)
// соблюдается только при импорте, не ограничением БД.
type ModelSpec struct {
	BaseModel
	ModelID   uint    `gorm:"not null;index" json:"model_id"`
	SpecName  string  `gorm:"size:255;not null" json:"spec_name"`
	SpecValue string  `gorm:"size:500;not null" json:"spec_value"`
	SpecUnit  *string `gorm:"size:50" json:"spec_unit"`
	Category  *string `gorm:"size:100" json:"category"`
	SortOrder int     `gorm:"not null;default:0" json:"sort_order"`
}

func (ModelSpec) TableName() string { return "model_specs" }

// ModelVideo - ссылка на видео (youtube, vk, instagram, tiktok)
type ModelVideo struct {
	BaseModel
	ModelID   uint    `gorm:"not null;index" json:"model_id"`
	Title     *string `gorm:"size:255" json:"title"`
	URL       string  `gorm:"column:url;size:500;not null" json:"url"`
	VideoType *string `gorm:"size:50" json:"video_type"`
	SortOrder int     `gorm:"not null;default:0" json:"sort_order"`
}

func (ModelVideo) TableName() string { return "model_videos" }
