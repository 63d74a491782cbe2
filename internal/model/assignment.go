package model

import (
	"github.com/google/uuid"
)

// Assignment links an employee to a task with a share of effort. The pair
// (task, employee) is the composite key; percentages across a task are not
// required to sum to 100.
type Assignment struct {
	TaskID     uuid.UUID `gorm:"type:uuid;primaryKey;column:task_rowguid"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey;column:employee_rowguid"`
	Percentage float64   `gorm:"not null"`

	Task     Task     `gorm:"foreignKey:TaskID"`
	Employee Employee `gorm:"foreignKey:EmployeeID"`
}
