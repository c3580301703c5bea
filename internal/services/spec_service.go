package services

import (
	"context"
	"strings"

	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/internal/services/dto"
	"moto_portal/pkg/apperrors"

	"gorm.io/gorm"
)

type SpecService interface {
	List(ctx context.Context, db *gorm.DB, modelID uint, query *dto.SpecQuery) ([]models.ModelSpec, error)
	Create(ctx context.Context, db *gorm.DB, modelID uint, req *dto.CreateSpecRequest) (*models.ModelSpec, error)
	Update(ctx context.Context, db *gorm.DB, specID uint, req *dto.UpdateSpecRequest) (*models.ModelSpec, error)
	Delete(ctx context.Context, db *gorm.DB, specID uint) error
	Reorder(ctx context.Context, db *gorm.DB, modelID uint, specIDs []uint) error
	// BulkUpsert обновляет характеристики по имени или создаёт новые
	BulkUpsert(ctx context.Context, db *gorm.DB, modelID uint, items []dto.SpecInput) (*dto.BulkSpecsResult, error)
}

type specService struct {
	specRepo  repositories.SpecRepository
	modelRepo repositories.ModelRepository
}

func NewSpecService(specRepo repositories.SpecRepository, modelRepo repositories.ModelRepository) SpecService {
	return &specService{
		specRepo:  specRepo,
		modelRepo: modelRepo,
	}
}

func (s *specService) List(ctx context.Context, db *gorm.DB, modelID uint, query *dto.SpecQuery) ([]models.ModelSpec, error) {
	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return nil, err
	}
	specs, err := s.specRepo.FindByModel(db, modelID, repositories.SpecFilter{
		Category: strings.TrimSpace(query.Category),
		Search:   strings.TrimSpace(query.Search),
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return specs, nil
}

func (s *specService) Create(ctx context.Context, db *gorm.DB, modelID uint, req *dto.CreateSpecRequest) (*models.ModelSpec, error) {
	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return nil, err
	}

	spec := &models.ModelSpec{
		ModelID:   modelID,
		SpecName:  strings.TrimSpace(req.SpecName),
		SpecValue: strings.TrimSpace(req.SpecValue),
		SpecUnit:  trimOptional(req.SpecUnit),
		Category:  trimOptional(req.Category),
		SortOrder: req.SortOrder,
	}
	if spec.SpecName == "" || spec.SpecValue == "" {
		return nil, apperrors.InvalidInput("spec_name and spec_value must not be blank")
	}

	if err := s.specRepo.Create(db, spec); err != nil {
		return nil, mapRepoError(err)
	}
	return spec, nil
}

func (s *specService) Update(ctx context.Context, db *gorm.DB, specID uint, req *dto.UpdateSpecRequest) (*models.ModelSpec, error) {
	spec, err := s.specRepo.Update(db, specID, req.Updates())
	if err != nil {
		return nil, mapRepoError(err)
	}
	return spec, nil
}

func (s *specService) Delete(ctx context.Context, db *gorm.DB, specID uint) error {
	return mapRepoError(s.specRepo.Delete(db, specID))
}

func (s *specService) Reorder(ctx context.Context, db *gorm.DB, modelID uint, specIDs []uint) error {
	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return s.specRepo.Reorder(tx, modelID, specIDs)
	})
	return mapRepoError(err)
}

func (s *specService) BulkUpsert(ctx context.Context, db *gorm.DB, modelID uint, items []dto.SpecInput) (*dto.BulkSpecsResult, error) {
	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return nil, err
	}

	result := &dto.BulkSpecsResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			name := strings.TrimSpace(item.SpecName)
			value := strings.TrimSpace(item.SpecValue)
			if name == "" || value == "" {
				continue
			}
			unit := trimOptional(item.SpecUnit)

			existing, err := s.specRepo.FindByName(tx, modelID, name)
			if err != nil {
				return err
			}
			if existing != nil {
				if _, err := s.specRepo.Update(tx, existing.ID, map[string]interface{}{
					"spec_value": value,
					"spec_unit":  unit,
				}); err != nil {
					return err
				}
				result.Updated++
				continue
			}

			if err := s.specRepo.Create(tx, &models.ModelSpec{
				ModelID:   modelID,
				SpecName:  name,
				SpecValue: value,
				SpecUnit:  unit,
			}); err != nil {
				return err
			}
			result.Created++
		}
		return nil
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	result.TotalProcessed = result.Updated + result.Created
	return result, nil
}

// trimOptional: nil и пустая после обрезки строка дают nil
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
