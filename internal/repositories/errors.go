package repositories

import "errors"

var (
	ErrModelNotFound      = errors.New("model not found")
	ErrPhotoNotFound      = errors.New("photo not found")
	ErrSpecNotFound       = errors.New("spec not found")
	ErrVideoNotFound      = errors.New("video not found")
	ErrNewsNotFound       = errors.New("news not found")
	ErrRegulationNotFound = errors.New("regulation not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
)

// Pagination - skip/limit для списков
type Pagination struct {
	Skip  int
	Limit int
}

// MaxPageLimit - верхняя граница limit для публичных списков
const MaxPageLimit = 1000

func (p Pagination) normalized() Pagination {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// likePattern - шаблон для регистронезависимого поиска подстроки
func likePattern(s string) string {
	return "%" + s + "%"
}
