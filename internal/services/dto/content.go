package dto

// =======================
// News / Regulations
// =======================

type CreateNewsRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Content     string  `json:"content" validate:"required"`
	Summary     *string `json:"summary"`
	Author      *string `json:"author" validate:"omitempty,max=255"`
	IsPublished bool    `json:"is_published"`
}

type UpdateNewsRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content     *string `json:"content" validate:"omitempty,min=1"`
	Summary     *string `json:"summary"`
	Author      *string `json:"author" validate:"omitempty,max=255"`
	IsPublished *bool   `json:"is_published"`
}

func (r *UpdateNewsRequest) Updates() map[string]interface{} {
	u := make(map[string]interface{})
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.Content != nil {
		u["content"] = *r.Content
	}
	if r.Summary != nil {
		u["summary"] = *r.Summary
	}
	if r.Author != nil {
		u["author"] = *r.Author
	}
	if r.IsPublished != nil {
		u["is_published"] = *r.IsPublished
	}
	return u
}

type CreateRegulationRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Content     string  `json:"content" validate:"required"`
	Summary     *string `json:"summary"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	IsPublished bool    `json:"is_published"`
}

type UpdateRegulationRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content     *string `json:"content" validate:"omitempty,min=1"`
	Summary     *string `json:"summary"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	IsPublished *bool   `json:"is_published"`
}

func (r *UpdateRegulationRequest) Updates() map[string]interface{} {
	u := make(map[string]interface{})
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.Content != nil {
		u["content"] = *r.Content
	}
	if r.Summary != nil {
		u["summary"] = *r.Summary
	}
	if r.Category != nil {
		u["category"] = *r.Category
	}
	if r.IsPublished != nil {
		u["is_published"] = *r.IsPublished
	}
	return u
}

type PublicationQuery struct {
	Skip     int    `form:"skip" validate:"min=0"`
	Limit    int    `form:"limit" validate:"min=0,max=1000"`
	Search   string `form:"search"`
	Category string `form:"category"`
}

// =======================
// Employees
// =======================

type CreateEmployeeRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=255"`
	LastName    string  `json:"last_name" validate:"required,max=255"`
	Position    string  `json:"position" validate:"required,max=255"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"` // по умолчанию true
	SortOrder   int     `json:"sort_order"`
}

type UpdateEmployeeRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,min=1,max=255"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1,max=255"`
	Position    *string `json:"position" validate:"omitempty,min=1,max=255"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

func (r *UpdateEmployeeRequest) Updates() map[string]interface{} {
	u := make(map[string]interface{})
	if r.FirstName != nil {
		u["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		u["last_name"] = *r.LastName
	}
	if r.Position != nil {
		u["position"] = *r.Position
	}
	if r.Email != nil {
		u["email"] = *r.Email
	}
	if r.Phone != nil {
		u["phone"] = *r.Phone
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	if r.SortOrder != nil {
		u["sort_order"] = *r.SortOrder
	}
	return u
}

type EmployeeQuery struct {
	Skip     int    `form:"skip" validate:"min=0"`
	Limit    int    `form:"limit" validate:"min=0,max=1000"`
	Search   string `form:"search"`
	Position string `form:"position"`
}

// =======================
// Sections
// =======================

type SectionVisibilityRequest struct {
	IsVisible *bool `json:"is_visible" validate:"required"`
}

type SectionsVisibilityResponse struct {
	News        bool `json:"news"`
	Regulations bool `json:"regulations"`
	Employees   bool `json:"employees"`
}
