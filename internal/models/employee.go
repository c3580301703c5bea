package models

type Employee struct {
	BaseModelWithUpdated
	FirstName   string  `gorm:"size:255;not null" json:"first_name"`
	LastName    string  `gorm:"size:255;not null" json:"last_name"`
	Position    string  `gorm:"size:255;not null" json:"position"`
	Email       *string `gorm:"size:255" json:"email"`
	Phone       *string `gorm:"size:50" json:"phone"`
	Description *string `gorm:"type:text" json:"description"`
	PhotoPath   *string `gorm:"size:500" json:"photo_path"`
	IsActive    bool    `gorm:"not null" json:"is_active"`
	SortOrder   int     `gorm:"not null;default:0" json:"sort_order"`
}

func (Employee) TableName() string { return "employees" }
