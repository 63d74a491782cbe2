package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffdesk/internal/model"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Task, error)
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "rowguid = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// ListByEmployee retrieves all tasks directly owned by an employee
func (r *TaskRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Where("employee_rowguid = ?", employeeID).Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// ListByProject retrieves all tasks scoped to a project, each with its
// assignments and the assigned employees preloaded. Tasks without assignments
// survive with an empty list. Assignment lists are ordered by employee name
// for determinism.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Preload("Assignments.Employee").
		Where("project_rowguid = ?", projectID).
		Find(&tasks)

	if result.Error != nil {
		return nil, result.Error
	}

	for i := range tasks {
		assignments := tasks[i].Assignments
		sort.Slice(assignments, func(a, b int) bool {
			return assignments[a].Employee.Name < assignments[b].Employee.Name
		})
	}
	return tasks, nil
}

// Update replaces the mutable fields of a task. Start uses COALESCE semantics:
// a nil start keeps the stored value, while deadline and type are always
// overwritten with the given value, including to NULL.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("rowguid = ?", task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"start":       gorm.Expr("COALESCE(?,start)", task.Start),
			"deadline":    task.Deadline,
			"type":        task.Type,
		})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}

	var updated model.Task
	if err := r.db.WithContext(ctx).First(&updated, "rowguid = ?", task.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a task and every assignment referencing it as one transaction.
// If the assignment cleanup fails the task row is left untouched.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var deleted model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, "rowguid = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		if err := tx.Where("task_rowguid = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Task{}, "rowguid = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
