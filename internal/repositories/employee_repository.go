package repositories

import (
	"errors"

	"moto_portal/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(db *gorm.DB, employee *models.Employee) error
	FindByID(db *gorm.DB, id uint, activeOnly bool) (*models.Employee, error)
	FindAll(db *gorm.DB, filter EmployeeFilter) ([]models.Employee, error)
	Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Employee, error)
	Delete(db *gorm.DB, id uint) (*models.Employee, error)
}

type EmployeeFilter struct {
	Pagination
	Search     string
	Position   string
	ActiveOnly bool
}

type EmployeeRepositoryImpl struct{}

func NewEmployeeRepository() EmployeeRepository {
	return &EmployeeRepositoryImpl{}
}

func (r *EmployeeRepositoryImpl) Create(db *gorm.DB, employee *models.Employee) error {
	return db.Create(employee).Error
}

func (r *EmployeeRepositoryImpl) FindByID(db *gorm.DB, id uint, activeOnly bool) (*models.Employee, error) {
	var employee models.Employee
	query := db
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepositoryImpl) FindAll(db *gorm.DB, filter EmployeeFilter) ([]models.Employee, error) {
	var list []models.Employee
	p := filter.Pagination.normalized()

	query := db.Model(&models.Employee{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(position) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if filter.Position != "" {
		query = query.Where("LOWER(position) LIKE LOWER(?)", likePattern(filter.Position))
	}

	err := query.Order("sort_order ASC, last_name ASC, first_name ASC").
		Offset(p.Skip).Limit(p.Limit).
		Find(&list).Error
	return list, err
}

func (r *EmployeeRepositoryImpl) Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Employee, error) {
	employee, err := r.FindByID(db, id, false)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(employee).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(db, id, false)
}

// Delete возвращает удалённую запись, чтобы удалить фото сотрудника
func (r *EmployeeRepositoryImpl) Delete(db *gorm.DB, id uint) (*models.Employee, error) {
	employee, err := r.FindByID(db, id, false)
	if err != nil {
		return nil, err
	}
	if err := db.Delete(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}
