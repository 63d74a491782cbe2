package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID    uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:rowguid"`
	Title string     `gorm:"not null"`
	Start *time.Time
	End   *time.Time `gorm:"column:end"`
}
