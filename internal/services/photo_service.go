package services

import (
	"context"
	"fmt"

	"moto_portal/internal/assets"
	"moto_portal/internal/logger"
	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/pkg/apperrors"

	"gorm.io/gorm"
)

type PhotoService interface {
	// Upload сохраняет файл в models/<id>/ и добавляет фото в конец коллекции
	Upload(ctx context.Context, db *gorm.DB, modelID uint, file FileInput) (*models.ModelPhoto, error)
	List(ctx context.Context, db *gorm.DB, modelID uint) ([]models.ModelPhoto, error)
	Reorder(ctx context.Context, db *gorm.DB, modelID uint, photoIDs []uint) error
	// SetPrimary: после вызова ровно одно фото модели основное
	SetPrimary(ctx context.Context, db *gorm.DB, photoID uint) (*models.ModelPhoto, error)
	Delete(ctx context.Context, db *gorm.DB, photoID uint) error
}

type photoService struct {
	photoRepo repositories.PhotoRepository
	modelRepo repositories.ModelRepository
	store     *assets.Store
}

func NewPhotoService(photoRepo repositories.PhotoRepository, modelRepo repositories.ModelRepository, store *assets.Store) PhotoService {
	return &photoService{
		photoRepo: photoRepo,
		modelRepo: modelRepo,
		store:     store,
	}
}

func (s *photoService) Upload(ctx context.Context, db *gorm.DB, modelID uint, file FileInput) (*models.ModelPhoto, error) {
	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return nil, err
	}

	var photo *models.ModelPhoto
	_, err := saveThenInsert(ctx, db, s.store, file, fmt.Sprintf("models/%d", modelID), assets.KindImage,
		func(tx *gorm.DB, saved *assets.SavedFile) error {
			photo = &models.ModelPhoto{
				ModelID: modelID,
				FileAsset: models.FileAsset{
					Filename:         saved.Filename,
					OriginalFilename: saved.OriginalFilename,
					FilePath:         saved.Path,
					FileSize:         saved.Size,
				},
			}
			return s.photoRepo.Create(tx, photo)
		})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "Model photo uploaded", "model_id", modelID, "photo_id", photo.ID, "path", photo.FilePath)
	return photo, nil
}

func (s *photoService) List(ctx context.Context, db *gorm.DB, modelID uint) ([]models.ModelPhoto, error) {
	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return nil, err
	}
	photos, err := s.photoRepo.FindByModel(db, modelID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return photos, nil
}

func (s *photoService) Reorder(ctx context.Context, db *gorm.DB, modelID uint, photoIDs []uint) error {
	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return s.photoRepo.Reorder(tx, modelID, photoIDs)
	})
	return mapRepoError(err)
}

func (s *photoService) SetPrimary(ctx context.Context, db *gorm.DB, photoID uint) (*models.ModelPhoto, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	photo, err := s.photoRepo.FindByID(tx, photoID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if err := s.photoRepo.SetPrimary(tx, photo); err != nil {
		return nil, mapRepoError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return photo, nil
}

func (s *photoService) Delete(ctx context.Context, db *gorm.DB, photoID uint) error {
	photo, err := s.photoRepo.FindByID(db, photoID)
	if err != nil {
		return mapRepoError(err)
	}

	if err := s.photoRepo.Delete(db, photoID); err != nil {
		return mapRepoError(err)
	}

	deleteFiles(ctx, s.store, photo.FilePath)
	return nil
}
