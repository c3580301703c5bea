package services

import (
	"context"

	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/internal/services/dto"
	"moto_portal/pkg/apperrors"

	"gorm.io/gorm"
)

// SectionService - видимость разделов портала, читается из БД на каждый запрос
type SectionService interface {
	Visibility(ctx context.Context, db *gorm.DB) (*dto.SectionsVisibilityResponse, error)
	// EnsureVisible - SectionHidden (404), если раздел скрыт
	EnsureVisible(ctx context.Context, db *gorm.DB, section models.Section) error
	SetVisibility(ctx context.Context, db *gorm.DB, section models.Section, visible bool) (*dto.SectionsVisibilityResponse, error)
}

type sectionService struct {
	sectionRepo repositories.SectionRepository
}

func NewSectionService(sectionRepo repositories.SectionRepository) SectionService {
	return &sectionService{sectionRepo: sectionRepo}
}

func (s *sectionService) Visibility(ctx context.Context, db *gorm.DB) (*dto.SectionsVisibilityResponse, error) {
	all, err := s.sectionRepo.All(db)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return &dto.SectionsVisibilityResponse{
		News:        all[models.SectionNews],
		Regulations: all[models.SectionRegulations],
		Employees:   all[models.SectionEmployees],
	}, nil
}

func (s *sectionService) EnsureVisible(ctx context.Context, db *gorm.DB, section models.Section) error {
	visible, err := s.sectionRepo.IsVisible(db, section)
	if err != nil {
		return mapRepoError(err)
	}
	if !visible {
		return apperrors.SectionHidden(string(section))
	}
	return nil
}

func (s *sectionService) SetVisibility(ctx context.Context, db *gorm.DB, section models.Section, visible bool) (*dto.SectionsVisibilityResponse, error) {
	if !section.IsValid() {
		return nil, apperrors.NotFound("section", "Unknown section")
	}
	if err := s.sectionRepo.SetVisible(db, section, visible); err != nil {
		return nil, mapRepoError(err)
	}
	return s.Visibility(ctx, db)
}
