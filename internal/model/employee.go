package model

import (
	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:rowguid"`
	Name       string    `gorm:"not null"`
	Email      string    `gorm:"uniqueIndex;not null"`
	Department string
	Age        int
	Gender     string
}

// TableName keeps the historical singular table name.
func (Employee) TableName() string {
	return "employee"
}
