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

type NewsService interface {
	// Public: только опубликованные; скрытый раздел -> SectionHidden
	ListPublished(ctx context.Context, db *gorm.DB, query *dto.PublicationQuery) ([]models.News, error)
	GetPublished(ctx context.Context, db *gorm.DB, id uint) (*models.News, error)

	// Admin
	List(ctx context.Context, db *gorm.DB, query *dto.PublicationQuery) ([]models.News, error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.News, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateNewsRequest) (*models.News, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateNewsRequest) (*models.News, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
	AddPhoto(ctx context.Context, db *gorm.DB, newsID uint, file FileInput) (*models.NewsPhoto, error)
	AddDocument(ctx context.Context, db *gorm.DB, newsID uint, file FileInput) (*models.NewsDocument, error)
	DeletePhoto(ctx context.Context, db *gorm.DB, photoID uint) error
	DeleteDocument(ctx context.Context, db *gorm.DB, docID uint) error
}

type newsService struct {
	newsRepo       repositories.NewsRepository
	sectionService SectionService
	store          *assets.Store
}

func NewNewsService(newsRepo repositories.NewsRepository, sectionService SectionService, store *assets.Store) NewsService {
	return &newsService{
		newsRepo:       newsRepo,
		sectionService: sectionService,
		store:          store,
	}
}

func (s *newsService) ListPublished(ctx context.Context, db *gorm.DB, query *dto.PublicationQuery) ([]models.News, error) {
	if err := s.sectionService.EnsureVisible(ctx, db, models.SectionNews); err != nil {
		return nil, err
	}
	return s.list(db, query, true)
}

func (s *newsService) GetPublished(ctx context.Context, db *gorm.DB, id uint) (*models.News, error) {
	if err := s.sectionService.EnsureVisible(ctx, db, models.SectionNews); err != nil {
		return nil, err
	}
	news, err := s.newsRepo.FindByID(db, id, true)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return news, nil
}

func (s *newsService) List(ctx context.Context, db *gorm.DB, query *dto.PublicationQuery) ([]models.News, error) {
	return s.list(db, query, false)
}

func (s *newsService) list(db *gorm.DB, query *dto.PublicationQuery, publishedOnly bool) ([]models.News, error) {
	list, err := s.newsRepo.FindAll(db, repositories.PublicationFilter{
		Pagination:    repositories.Pagination{Skip: query.Skip, Limit: query.Limit},
		Search:        strings.TrimSpace(query.Search),
		PublishedOnly: publishedOnly,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return list, nil
}

func (s *newsService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.News, error) {
	news, err := s.newsRepo.FindByID(db, id, false)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return news, nil
}

func (s *newsService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateNewsRequest) (*models.News, error) {
	news := &models.News{
		Title:       strings.TrimSpace(req.Title),
		Content:     req.Content,
		Summary:     req.Summary,
		Author:      trimOptional(req.Author),
		IsPublished: req.IsPublished,
	}
	if news.IsPublished {
		now := time.Now()
		news.PublishedAt = &now
	}

	if err := s.newsRepo.Create(db, news); err != nil {
		return nil, mapRepoError(err)
	}
	logger.CtxInfo(ctx, "News created", "news_id", news.ID, "published", news.IsPublished)
	return news, nil
}

func (s *newsService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateNewsRequest) (*models.News, error) {
	news, err := s.newsRepo.Update(db, id, req.Updates())
	if err != nil {
		return nil, mapRepoError(err)
	}
	return news, nil
}

func (s *newsService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	paths, err := s.newsRepo.DeleteCascade(tx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	deleteFiles(ctx, s.store, paths...)
	return nil
}

func (s *newsService) AddPhoto(ctx context.Context, db *gorm.DB, newsID uint, file FileInput) (*models.NewsPhoto, error) {
	if _, err := s.newsRepo.FindByID(db, newsID, false); err != nil {
		return nil, mapRepoError(err)
	}

	var photo *models.NewsPhoto
	_, err := saveThenInsert(ctx, db, s.store, file, fmt.Sprintf("news/%d", newsID), assets.KindImage,
		func(tx *gorm.DB, saved *assets.SavedFile) error {
			photo = &models.NewsPhoto{NewsID: newsID, FileAsset: fileAsset(saved)}
			return s.newsRepo.AddPhoto(tx, photo)
		})
	if err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *newsService) AddDocument(ctx context.Context, db *gorm.DB, newsID uint, file FileInput) (*models.NewsDocument, error) {
	if _, err := s.newsRepo.FindByID(db, newsID, false); err != nil {
		return nil, mapRepoError(err)
	}

	var doc *models.NewsDocument
	_, err := saveThenInsert(ctx, db, s.store, file, fmt.Sprintf("news/%d/documents", newsID), assets.KindDocument,
		func(tx *gorm.DB, saved *assets.SavedFile) error {
			doc = &models.NewsDocument{NewsID: newsID, FileAsset: fileAsset(saved)}
			return s.newsRepo.AddDocument(tx, doc)
		})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *newsService) DeletePhoto(ctx context.Context, db *gorm.DB, photoID uint) error {
	p, err := s.newsRepo.DeletePhoto(db, photoID)
	if err != nil {
		return mapRepoError(err)
	}
	deleteFiles(ctx, s.store, p)
	return nil
}

func (s *newsService) DeleteDocument(ctx context.Context, db *gorm.DB, docID uint) error {
	p, err := s.newsRepo.DeleteDocument(db, docID)
	if err != nil {
		return mapRepoError(err)
	}
	deleteFiles(ctx, s.store, p)
	return nil
}

func fileAsset(saved *assets.SavedFile) models.FileAsset {
	return models.FileAsset{
		Filename:         saved.Filename,
		OriginalFilename: saved.OriginalFilename,
		FilePath:         saved.Path,
		FileSize:         saved.Size,
	}
}
