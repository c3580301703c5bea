package services

import (
	"context"
	"strings"

	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/internal/services/dto"

	"gorm.io/gorm"
)

type VideoService interface {
	List(ctx context.Context, db *gorm.DB, modelID uint) ([]models.ModelVideo, error)
	Create(ctx context.Context, db *gorm.DB, modelID uint, req *dto.CreateVideoRequest) (*models.ModelVideo, error)
	Update(ctx context.Context, db *gorm.DB, videoID uint, req *dto.UpdateVideoRequest) (*models.ModelVideo, error)
	Delete(ctx context.Context, db *gorm.DB, videoID uint) error
	Reorder(ctx context.Context, db *gorm.DB, modelID uint, videoIDs []uint) error
}

type videoService struct {
	videoRepo repositories.VideoRepository
	modelRepo repositories.ModelRepository
}

func NewVideoService(videoRepo repositories.VideoRepository, modelRepo repositories.ModelRepository) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		modelRepo: modelRepo,
	}
}

func (s *videoService) List(ctx context.Context, db *gorm.DB, modelID uint) ([]models.ModelVideo, error) {
	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return nil, err
	}
	videos, err := s.videoRepo.FindByModel(db, modelID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return videos, nil
}

func (s *videoService) Create(ctx context.Context, db *gorm.DB, modelID uint, req *dto.CreateVideoRequest) (*models.ModelVideo, error) {
	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return nil, err
	}

	video := &models.ModelVideo{
		ModelID:   modelID,
		Title:     trimOptional(req.Title),
		URL:       strings.TrimSpace(req.URL),
		VideoType: trimOptional(req.VideoType),
		SortOrder: req.SortOrder,
	}
	if err := s.videoRepo.Create(db, video); err != nil {
		return nil, mapRepoError(err)
	}
	return video, nil
}

func (s *videoService) Update(ctx context.Context, db *gorm.DB, videoID uint, req *dto.UpdateVideoRequest) (*models.ModelVideo, error) {
	video, err := s.videoRepo.Update(db, videoID, req.Updates())
	if err != nil {
		return nil, mapRepoError(err)
	}
	return video, nil
}

func (s *videoService) Delete(ctx context.Context, db *gorm.DB, videoID uint) error {
	return mapRepoError(s.videoRepo.Delete(db, videoID))
}

func (s *videoService) Reorder(ctx context.Context, db *gorm.DB, modelID uint, videoIDs []uint) error {
	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return s.videoRepo.Reorder(tx, modelID, videoIDs)
	})
	return mapRepoError(err)
}
