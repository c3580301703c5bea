package dto

import "moto_portal/internal/models"

// =======================
// Models
// =======================

type CreateModelRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	SalesScript *string `json:"sales_script"`
	IsActive    *bool   `json:"is_active"` // по умолчанию true
	SortOrder   int     `json:"sort_order"`
}

// UpdateModelRequest - частичное обновление: nil поля не меняются
type UpdateModelRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	SalesScript *string `json:"sales_script"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

func (r *UpdateModelRequest) Updates() map[string]interface{} {
	u := make(map[string]interface{})
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Category != nil {
		u["category"] = *r.Category
	}
	if r.SalesScript != nil {
		u["sales_script"] = *r.SalesScript
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	if r.SortOrder != nil {
		u["sort_order"] = *r.SortOrder
	}
	return u
}

type ModelListQuery struct {
	Skip     int    `form:"skip" validate:"min=0"`
	Limit    int    `form:"limit" validate:"min=0,max=1000"`
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
}

type ModelFilterResponse struct {
	Models         []models.Model    `json:"models"`
	Total          int               `json:"total"`
	FiltersApplied map[string]string `json:"filters_applied"`
}

// =======================
// Specs
// =======================

type CreateSpecRequest struct {
	SpecName  string  `json:"spec_name" validate:"required,max=255"`
	SpecValue string  `json:"spec_value" validate:"required,max=500"`
	SpecUnit  *string `json:"spec_unit" validate:"omitempty,max=50"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
	SortOrder int     `json:"sort_order"`
}

type UpdateSpecRequest struct {
	SpecName  *string `json:"spec_name" validate:"omitempty,min=1,max=255"`
	SpecValue *string `json:"spec_value" validate:"omitempty,min=1,max=500"`
	SpecUnit  *string `json:"spec_unit" validate:"omitempty,max=50"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
	SortOrder *int    `json:"sort_order"`
}

func (r *UpdateSpecRequest) Updates() map[string]interface{} {
	u := make(map[string]interface{})
	if r.SpecName != nil {
		u["spec_name"] = *r.SpecName
	}
	if r.SpecValue != nil {
		u["spec_value"] = *r.SpecValue
	}
	if r.SpecUnit != nil {
		u["spec_unit"] = *r.SpecUnit
	}
	if r.Category != nil {
		u["category"] = *r.Category
	}
	if r.SortOrder != nil {
		u["sort_order"] = *r.SortOrder
	}
	return u
}

type SpecQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// SpecInput - строка массового обновления
type SpecInput struct {
	SpecName  string  `json:"spec_name"`
	SpecValue string  `json:"spec_value"`
	SpecUnit  *string `json:"spec_unit"`
}

type BulkSpecsResult struct {
	Updated        int `json:"updated"`
	Created        int `json:"created"`
	TotalProcessed int `json:"total_processed"`
}

// ImportResult - итог импорта таблицы характеристик
type ImportResult struct {
	Imported       int `json:"imported"`
	Updated        int `json:"updated"`
	TotalProcessed int `json:"total_processed"`
	Skipped        int `json:"-"`
}

// ImportOptions - параметры импорта таблицы
type ImportOptions struct {
	Filename        string
	ReplaceExisting bool
}

// =======================
// Videos
// =======================

type CreateVideoRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=255"`
	URL       string  `json:"url" validate:"required,url,max=500"`
	VideoType *string `json:"video_type" validate:"omitempty,is-video-type"`
	SortOrder int     `json:"sort_order"`
}

type UpdateVideoRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=255"`
	URL       *string `json:"url" validate:"omitempty,url,max=500"`
	VideoType *string `json:"video_type" validate:"omitempty,is-video-type"`
	SortOrder *int    `json:"sort_order"`
}

func (r *UpdateVideoRequest) Updates() map[string]interface{} {
	u := make(map[string]interface{})
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.URL != nil {
		u["url"] = *r.URL
	}
	if r.VideoType != nil {
		u["video_type"] = *r.VideoType
	}
	if r.SortOrder != nil {
		u["sort_order"] = *r.SortOrder
	}
	return u
}

type BulkSpecsRequest struct {
	Specs []SpecInput `json:"specs" validate:"required"`
}
