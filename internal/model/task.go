package model

import (
	"time"

	"github.com/google/uuid"
)

// Task belongs to a project and/or directly to an employee. Start is never
// stored null: creation fills it with the current time when the client omits it.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:rowguid"`
	Title       string     `gorm:"not null"`
	Description string
	Start       *time.Time
	Deadline    *time.Time
	Type        string
	EmployeeID  *uuid.UUID `gorm:"type:uuid;column:employee_rowguid;index"`
	ProjectID   *uuid.UUID `gorm:"type:uuid;column:project_rowguid;index"`

	Employee    *Employee    `gorm:"foreignKey:EmployeeID"`
	Project     *Project     `gorm:"foreignKey:ProjectID"`
	Assignments []Assignment `gorm:"foreignKey:TaskID"`
}
