package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffdesk/internal/model"
)

type EventRepository struct {
	db *gorm.DB
}

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *model.Event) error
	GetAll(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) (*model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ EventRepositoryInterface = (*EventRepository)(nil)

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EventRepository) GetAll(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(ctx context.Context, event *model.Event) (*model.Event, error) {
	result := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("rowguid = ?", event.ID).
		Updates(map[string]interface{}{
			"title": event.Title,
			"start": event.Start,
			"end":   event.End,
		})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEventNotFound
	}

	var updated model.Event
	if err := r.db.WithContext(ctx).First(&updated, "rowguid = ?", event.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Event{}, "rowguid = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
