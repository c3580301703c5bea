package services

import (
	"context"

	"moto_portal/internal/assets"
	"moto_portal/internal/services/dto"
	"moto_portal/internal/validator"
	"moto_portal/pkg/apperrors"
)

// UploadService - загрузка изображений без привязки к записи (редактор контента)
type UploadService interface {
	UploadImage(ctx context.Context, category string, file FileInput) (*dto.UploadResponse, error)
}

type uploadService struct {
	store *assets.Store
}

func NewUploadService(store *assets.Store) UploadService {
	return &uploadService{store: store}
}

func (s *uploadService) UploadImage(ctx context.Context, category string, file FileInput) (*dto.UploadResponse, error) {
	if !validator.IsUploadCategory(category) {
		return nil, apperrors.InvalidInput("Invalid category: must be one of models, news, employees, regulations")
	}

	saved, err := s.store.SaveReader(ctx, file.Content, file.Filename, category, assets.KindImage)
	if err != nil {
		return nil, err
	}

	return &dto.UploadResponse{
		FilePath:         saved.Path,
		Filename:         saved.Filename,
		OriginalFilename: saved.OriginalFilename,
		FileSize:         saved.Size,
		URL:              s.store.URL(saved.Path),
	}, nil
}
