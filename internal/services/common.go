package services

import (
	"context"
	"errors"
	"io"
	"net/http"

	"moto_portal/internal/assets"
	"moto_portal/internal/logger"
	"moto_portal/internal/repositories"
	"moto_portal/pkg/apperrors"

	"gorm.io/gorm"
)

// FileInput - загруженный файл: исходное имя и содержимое
type FileInput struct {
	Filename string
	Content  io.Reader
}

// mapRepoError переводит ошибки репозиториев в AppError
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, repositories.ErrModelNotFound):
		return apperrors.NotFound("model", "Model not found")
	case errors.Is(err, repositories.ErrPhotoNotFound):
		return apperrors.NotFound("photo", "Photo not found")
	case errors.Is(err, repositories.ErrSpecNotFound):
		return apperrors.NotFound("spec", "Spec not found")
	case errors.Is(err, repositories.ErrVideoNotFound):
		return apperrors.NotFound("video", "Video not found")
	case errors.Is(err, repositories.ErrNewsNotFound):
		return apperrors.NotFound("news", "News not found")
	case errors.Is(err, repositories.ErrRegulationNotFound):
		return apperrors.NotFound("regulation", "Regulation not found")
	case errors.Is(err, repositories.ErrEmployeeNotFound):
		return apperrors.NotFound("employee", "Employee not found")
	case errors.Is(err, repositories.ErrAttachmentNotFound):
		return apperrors.NotFound("attachment", "File not found")
	default:
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "database", "Database operation failed", http.StatusInternalServerError)
	}
}

// ensureModel - NotFound если модели нет
func ensureModel(db *gorm.DB, repo repositories.ModelRepository, modelID uint) error {
	exists, err := repo.Exists(db, modelID)
	if err != nil {
		return mapRepoError(err)
	}
	if !exists {
		return mapRepoError(repositories.ErrModelNotFound)
	}
	return nil
}

// saveThenInsert пишет файл, затем в транзакции создаёт строку.
// Если строку создать не удалось, только что записанный файл удаляется.
func saveThenInsert(
	ctx context.Context,
	db *gorm.DB,
	store *assets.Store,
	file FileInput,
	subfolder string,
	kind assets.Kind,
	insert func(tx *gorm.DB, saved *assets.SavedFile) error,
) (*assets.SavedFile, error) {
	saved, err := store.SaveReader(ctx, file.Content, file.Filename, subfolder, kind)
	if err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		store.Delete(ctx, saved.Path)
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := insert(tx, saved); err != nil {
		tx.Rollback()
		store.Delete(ctx, saved.Path)
		return nil, mapRepoError(err)
	}

	if err := tx.Commit().Error; err != nil {
		store.Delete(ctx, saved.Path)
		return nil, apperrors.InternalError(err)
	}

	return saved, nil
}

// deleteFiles - удаление файлов после коммита; ошибки только логируются
func deleteFiles(ctx context.Context, store *assets.Store, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if !store.Delete(ctx, p) {
			logger.CtxWarn(ctx, "Stored file left behind", "path", p)
		}
	}
}
