package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffdesk/internal/model"
)

type ProjectRepository struct {
	db *gorm.DB
}

type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *model.Project) error
	GetAll(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, project *model.Project) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Project, error)
}

var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).Where("rowguid = ?", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) (*model.Project, error) {
	result := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("rowguid = ?", project.ID).
		Updates(map[string]interface{}{
			"name":     project.Name,
			"deadline": project.Deadline,
		})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProjectNotFound
	}

	var updated model.Project
	if err := r.db.WithContext(ctx).First(&updated, "rowguid = ?", project.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a project, its tasks, and the assignments of those tasks as
// one transaction. A failure at any step leaves everything in place.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var deleted model.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, "rowguid = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}

		taskIDs := tx.Model(&model.Task{}).Select("rowguid").Where("project_rowguid = ?", id)
		if err := tx.Where("task_rowguid IN (?)", taskIDs).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_rowguid = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Project{}, "rowguid = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
