package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moto_portal/internal/assets"
	"moto_portal/internal/logger"
	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/internal/services/dto"
	"moto_portal/pkg/apperrors"

	"gorm.io/gorm"
)

type RegulationService interface {
	// Public: только опубликованные; скрытый раздел -> SectionHidden
	ListPublished(ctx context.Context, db *gorm.DB, query *dto.PublicationQuery) ([]models.Regulation, error)
	GetPublished(ctx context.Context, db *gorm.DB, id uint) (*models.Regulation, error)
	Categories(ctx context.Context, db *gorm.DB) ([]string, error)

	// Admin
	List(ctx context.Context, db *gorm.DB, query *dto.PublicationQuery) ([]models.Regulation, error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.Regulation, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateRegulationRequest) (*models.Regulation, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateRegulationRequest) (*models.Regulation, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
	AddPhoto(ctx context.Context, db *gorm.DB, regulationID uint, file FileInput) (*models.RegulationPhoto, error)
	AddDocument(ctx context.Context, db *gorm.DB, regulationID uint, file FileInput) (*models.RegulationDocument, error)
	DeletePhoto(ctx context.Context, db *gorm.DB, photoID uint) error
	DeleteDocument(ctx context.Context, db *gorm.DB, docID uint) error
}

type regulationService struct {
	regulationRepo repositories.RegulationRepository
	sectionService SectionService
	store          *assets.Store
}

func NewRegulationService(regulationRepo repositories.RegulationRepository, sectionService SectionService, store *assets.Store) RegulationService {
	return &regulationService{
		regulationRepo: regulationRepo,
		sectionService: sectionService,
		store:          store,
	}
}

func (s *regulationService) ListPublished(ctx context.Context, db *gorm.DB, query *dto.PublicationQuery) ([]models.Regulation, error) {
	if err := s.sectionService.EnsureVisible(ctx, db, models.SectionRegulations); err != nil {
		return nil, err
	}
	return s.list(db, query, true)
}

func (s *regulationService) GetPublished(ctx context.Context, db *gorm.DB, id uint) (*models.Regulation, error) {
	if err := s.sectionService.EnsureVisible(ctx, db, models.SectionRegulations); err != nil {
		return nil, err
	}
	regulation, err := s.regulationRepo.FindByID(db, id, true)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return regulation, nil
}

func (s *regulationService) Categories(ctx context.Context, db *gorm.DB) ([]string, error) {
	if err := s.sectionService.EnsureVisible(ctx, db, models.SectionRegulations); err != nil {
		return nil, err
	}
	categories, err := s.regulationRepo.Categories(db)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return categories, nil
}

func (s *regulationService) List(ctx context.Context, db *gorm.DB, query *dto.PublicationQuery) ([]models.Regulation, error) {
	return s.list(db, query, false)
}

func (s *regulationService) list(db *gorm.DB, query *dto.PublicationQuery, publishedOnly bool) ([]models.Regulation, error) {
	list, err := s.regulationRepo.FindAll(db, repositories.PublicationFilter{
		Pagination:    repositories.Pagination{Skip: query.Skip, Limit: query.Limit},
		Search:        strings.TrimSpace(query.Search),
		Category:      strings.TrimSpace(query.Category),
		PublishedOnly: publishedOnly,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return list, nil
}

func (s *regulationService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.Regulation, error) {
	regulation, err := s.regulationRepo.FindByID(db, id, false)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return regulation, nil
}

func (s *regulationService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateRegulationRequest) (*models.Regulation, error) {
	regulation := &models.Regulation{
		Title:       strings.TrimSpace(req.Title),
		Content:     req.Content,
		Summary:     req.Summary,
		Category:    trimOptional(req.Category),
		IsPublished: req.IsPublished,
	}
	if regulation.IsPublished {
		now := time.Now()
		regulation.PublishedAt = &now
	}

	if err := s.regulationRepo.Create(db, regulation); err != nil {
		return nil, mapRepoError(err)
	}
	logger.CtxInfo(ctx, "Regulation created", "regulation_id", regulation.ID, "published", regulation.IsPublished)
	return regulation, nil
}

func (s *regulationService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateRegulationRequest) (*models.Regulation, error) {
	regulation, err := s.regulationRepo.Update(db, id, req.Updates())
	if err != nil {
		return nil, mapRepoError(err)
	}
	return regulation, nil
}

func (s *regulationService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	paths, err := s.regulationRepo.DeleteCascade(tx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	deleteFiles(ctx, s.store, paths...)
	return nil
}

func (s *regulationService) AddPhoto(ctx context.Context, db *gorm.DB, regulationID uint, file FileInput) (*models.RegulationPhoto, error) {
	if _, err := s.regulationRepo.FindByID(db, regulationID, false); err != nil {
		return nil, mapRepoError(err)
	}

	var photo *models.RegulationPhoto
	_, err := saveThenInsert(ctx, db, s.store, file, fmt.Sprintf("regulations/%d", regulationID), assets.KindImage,
		func(tx *gorm.DB, saved *assets.SavedFile) error {
			photo = &models.RegulationPhoto{RegulationID: regulationID, FileAsset: fileAsset(saved)}
			return s.regulationRepo.AddPhoto(tx, photo)
		})
	if err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *regulationService) AddDocument(ctx context.Context, db *gorm.DB, regulationID uint, file FileInput) (*models.RegulationDocument, error) {
	if _, err := s.regulationRepo.FindByID(db, regulationID, false); err != nil {
		return nil, mapRepoError(err)
	}

	var doc *models.RegulationDocument
	_, err := saveThenInsert(ctx, db, s.store, file, fmt.Sprintf("regulations/%d/documents", regulationID), assets.KindDocument,
		func(tx *gorm.DB, saved *assets.SavedFile) error {
			doc = &models.RegulationDocument{RegulationID: regulationID, FileAsset: fileAsset(saved)}
			return s.regulationRepo.AddDocument(tx, doc)
		})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *regulationService) DeletePhoto(ctx context.Context, db *gorm.DB, photoID uint) error {
	p, err := s.regulationRepo.DeletePhoto(db, photoID)
	if err != nil {
		return mapRepoError(err)
	}
	deleteFiles(ctx, s.store, p)
	return nil
}

func (s *regulationService) DeleteDocument(ctx context.Context, db *gorm.DB, docID uint) error {
	p, err := s.regulationRepo.DeleteDocument(db, docID)
	if err != nil {
		return mapRepoError(err)
	}
	deleteFiles(ctx, s.store, p)
	return nil
}
