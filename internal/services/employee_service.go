package services

import (
	"context"
	"strings"

	"moto_portal/internal/assets"
	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/internal/services/dto"
	"moto_portal/pkg/apperrors"

	"gorm.io/gorm"
)

type EmployeeService interface {
	// Public: только активные; скрытый раздел -> SectionHidden
	ListActive(ctx context.Context, db *gorm.DB, query *dto.EmployeeQuery) ([]models.Employee, error)
	GetActive(ctx context.Context, db *gorm.DB, id uint) (*models.Employee, error)

	// Admin
	List(ctx context.Context, db *gorm.DB, query *dto.EmployeeQuery) ([]models.Employee, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateEmployeeRequest) (*models.Employee, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateEmployeeRequest) (*models.Employee, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
	// UploadPhoto заменяет фото сотрудника; прежний файл удаляется после коммита
	UploadPhoto(ctx context.Context, db *gorm.DB, id uint, file FileInput) (*models.Employee, error)
}

type employeeService struct {
	employeeRepo   repositories.EmployeeRepository
	sectionService SectionService
	store          *assets.Store
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepository, sectionService SectionService, store *assets.Store) EmployeeService {
	return &employeeService{
		employeeRepo:   employeeRepo,
		sectionService: sectionService,
		store:          store,
	}
}

func (s *employeeService) ListActive(ctx context.Context, db *gorm.DB, query *dto.EmployeeQuery) ([]models.Employee, error) {
	if err := s.sectionService.EnsureVisible(ctx, db, models.SectionEmployees); err != nil {
		return nil, err
	}
	return s.list(db, query, true)
}

func (s *employeeService) GetActive(ctx context.Context, db *gorm.DB, id uint) (*models.Employee, error) {
	if err := s.sectionService.EnsureVisible(ctx, db, models.SectionEmployees); err != nil {
		return nil, err
	}
	employee, err := s.employeeRepo.FindByID(db, id, true)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return employee, nil
}

func (s *employeeService) List(ctx context.Context, db *gorm.DB, query *dto.EmployeeQuery) ([]models.Employee, error) {
	return s.list(db, query, false)
}

func (s *employeeService) list(db *gorm.DB, query *dto.EmployeeQuery, activeOnly bool) ([]models.Employee, error) {
	list, err := s.employeeRepo.FindAll(db, repositories.EmployeeFilter{
		Pagination: repositories.Pagination{Skip: query.Skip, Limit: query.Limit},
		Search:     strings.TrimSpace(query.Search),
		Position:   strings.TrimSpace(query.Position),
		ActiveOnly: activeOnly,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return list, nil
}

func (s *employeeService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	employee := &models.Employee{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Position:    strings.TrimSpace(req.Position),
		Email:       trimOptional(req.Email),
		Phone:       trimOptional(req.Phone),
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
		SortOrder:   req.SortOrder,
	}
	if employee.FirstName == "" || employee.LastName == "" || employee.Position == "" {
		return nil, apperrors.InvalidInput("first_name, last_name and position must not be blank")
	}

	if err := s.employeeRepo.Create(db, employee); err != nil {
		return nil, mapRepoError(err)
	}
	return employee, nil
}

func (s *employeeService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.Update(db, id, req.Updates())
	if err != nil {
		return nil, mapRepoError(err)
	}
	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	employee, err := s.employeeRepo.Delete(db, id)
	if err != nil {
		return mapRepoError(err)
	}
	if employee.PhotoPath != nil {
		deleteFiles(ctx, s.store, *employee.PhotoPath)
	}
	return nil
}

func (s *employeeService) UploadPhoto(ctx context.Context, db *gorm.DB, id uint, file FileInput) (*models.Employee, error) {
	current, err := s.employeeRepo.FindByID(db, id, false)
	if err != nil {
		return nil, mapRepoError(err)
	}

	var updated *models.Employee
	_, err = saveThenInsert(ctx, db, s.store, file, "employees", assets.KindImage,
		func(tx *gorm.DB, saved *assets.SavedFile) error {
			var err error
			updated, err = s.employeeRepo.Update(tx, id, map[string]interface{}{"photo_path": saved.Path})
			return err
		})
	if err != nil {
		return nil, err
	}

	if current.PhotoPath != nil {
		deleteFiles(ctx, s.store, *current.PhotoPath)
	}
	return updated, nil
}
