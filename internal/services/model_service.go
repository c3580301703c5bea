package services

import (
	"context"
	"encoding/json"
	"strings"

	"moto_portal/internal/assets"
	"moto_portal/internal/logger"
	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/internal/services/dto"
	"moto_portal/pkg/apperrors"

	"gorm.io/gorm"
)

type ModelService interface {
	// Public
	ListActive(ctx context.Context, db *gorm.DB, query *dto.ModelListQuery) ([]models.Model, error)
	GetActive(ctx context.Context, db *gorm.DB, id uint) (*models.Model, error)
	FilterBySpecs(ctx context.Context, db *gorm.DB, rawFilters string) (*dto.ModelFilterResponse, error)

	// Admin
	List(ctx context.Context, db *gorm.DB, query *dto.ModelListQuery) ([]models.Model, error)
	GetFull(ctx context.Context, db *gorm.DB, id uint) (*models.Model, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateModelRequest) (*models.Model, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateModelRequest) (*models.Model, error)
	// Delete удаляет модель с фото, характеристиками и видео в одной транзакции,
	// затем пытается удалить файл каждого фото ровно один раз.
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

type modelService struct {
	modelRepo repositories.ModelRepository
	store     *assets.Store
}

func NewModelService(modelRepo repositories.ModelRepository, store *assets.Store) ModelService {
	return &modelService{
		modelRepo: modelRepo,
		store:     store,
	}
}

func (s *modelService) ListActive(ctx context.Context, db *gorm.DB, query *dto.ModelListQuery) ([]models.Model, error) {
	active := true
	if query.IsActive != nil {
		active = *query.IsActive
	}
	list, err := s.modelRepo.FindAll(db, repositories.ModelFilter{
		Pagination:    repositories.Pagination{Skip: query.Skip, Limit: query.Limit},
		Search:        strings.TrimSpace(query.Search),
		IsActive:      &active,
		WithRelations: true,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return list, nil
}

func (s *modelService) GetActive(ctx context.Context, db *gorm.DB, id uint) (*models.Model, error) {
	model, err := s.modelRepo.FindByIDWithRelations(db, id, true)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return model, nil
}

// FilterBySpecs принимает JSON-объект {"имя характеристики": "подстрока значения"}
func (s *modelService) FilterBySpecs(ctx context.Context, db *gorm.DB, rawFilters string) (*dto.ModelFilterResponse, error) {
	filters := map[string]string{}
	if strings.TrimSpace(rawFilters) != "" {
		if err := json.Unmarshal([]byte(rawFilters), &filters); err != nil {
			return nil, apperrors.InvalidInput("Invalid specs filter: expected JSON object of strings")
		}
	}

	cleaned := make(map[string]string, len(filters))
	for name, value := range filters {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cleaned[name] = strings.TrimSpace(value)
	}

	list, err := s.modelRepo.FindBySpecs(db, cleaned)
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &dto.ModelFilterResponse{
		Models:         list,
		Total:          len(list),
		FiltersApplied: cleaned,
	}, nil
}

func (s *modelService) List(ctx context.Context, db *gorm.DB, query *dto.ModelListQuery) ([]models.Model, error) {
	list, err := s.modelRepo.FindAll(db, repositories.ModelFilter{
		Pagination: repositories.Pagination{Skip: query.Skip, Limit: query.Limit},
		Search:     strings.TrimSpace(query.Search),
		IsActive:   query.IsActive,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return list, nil
}

func (s *modelService) GetFull(ctx context.Context, db *gorm.DB, id uint) (*models.Model, error) {
	model, err := s.modelRepo.FindByIDWithRelations(db, id, false)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return model, nil
}

func (s *modelService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateModelRequest) (*models.Model, error) {
	model := &models.Model{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		SalesScript: req.SalesScript,
		IsActive:    req.IsActive == nil || *req.IsActive,
		SortOrder:   req.SortOrder,
	}
	if model.Name == "" {
		return nil, apperrors.InvalidInput("Model name must not be empty")
	}

	if err := s.modelRepo.Create(db, model); err != nil {
		return nil, mapRepoError(err)
	}

	logger.CtxInfo(ctx, "Model created", "model_id", model.ID, "name", model.Name)
	return model, nil
}

func (s *modelService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateModelRequest) (*models.Model, error) {
	model, err := s.modelRepo.Update(db, id, req.Updates())
	if err != nil {
		return nil, mapRepoError(err)
	}
	return model, nil
}

func (s *modelService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	photos, err := s.modelRepo.DeleteCascade(tx, id)
	if err != nil {
		return mapRepoError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	paths := make([]string, 0, len(photos))
	for _, p := range photos {
		paths = append(paths, p.FilePath)
	}
	deleteFiles(ctx, s.store, paths...)

	logger.CtxInfo(ctx, "Model deleted", "model_id", id, "photos", len(photos))
	return nil
}
