package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffdesk/internal/model"
)

type AssignmentRepository struct {
	db *gorm.DB
}

type AssignmentRepositoryInterface interface {
	Add(ctx context.Context, assignment *model.Assignment) error
	Remove(ctx context.Context, taskID, employeeID uuid.UUID) (*model.Assignment, error)
}

var _ AssignmentRepositoryInterface = (*AssignmentRepository)(nil)

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Add inserts one association row. A duplicate (task, employee) pair or a
// dangling foreign key surfaces as the database's constraint error; no
// pre-check is performed here.
func (r *AssignmentRepository) Add(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

// Remove deletes the matching row and returns it, or (nil, nil) when no row
// matched. An absent row is not an error: the delete is idempotent.
func (r *AssignmentRepository) Remove(ctx context.Context, taskID, employeeID uuid.UUID) (*model.Assignment, error) {
	var removed model.Assignment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&removed, "task_rowguid = ? AND employee_rowguid = ?", taskID, employeeID).Error; err != nil {
			return err
		}
		return tx.Where("task_rowguid = ? AND employee_rowguid = ?", taskID, employeeID).
			Delete(&model.Assignment{}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &removed, nil
}
