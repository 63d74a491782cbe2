package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:rowguid"`
	Name     string    `gorm:"not null"`
	Deadline *time.Time
}
