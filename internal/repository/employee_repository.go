package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffdesk/internal/model"
)

type EmployeeRepository struct {
	db *gorm.DB
}

type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetAll(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	FindByEmail(ctx context.Context, email string) (*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Employee, error)
}

var _ EmployeeRepositoryInterface = (*EmployeeRepository)(nil)

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).Where("rowguid = ?", id).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Update replaces the mutable fields of an employee record
func (r *EmployeeRepository) Update(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	result := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("rowguid = ?", employee.ID).
		Updates(map[string]interface{}{
			"name":       employee.Name,
			"email":      employee.Email,
			"department": employee.Department,
			"age":        employee.Age,
			"gender":     employee.Gender,
		})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEmployeeNotFound
	}

	var updated model.Employee
	if err := r.db.WithContext(ctx).First(&updated, "rowguid = ?", employee.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an employee and their assignment rows as one transaction.
// Tasks owned by the employee are kept.
func (r *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var deleted model.Employee
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, "rowguid = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return err
		}

		if err := tx.Where("employee_rowguid = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Employee{}, "rowguid = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
