package repository

import "errors"

// Common repository errors
var (
	// ErrEmployeeNotFound is returned when an employee is not found
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrEventNotFound is returned when an event is not found
	ErrEventNotFound = errors.New("event not found")
)
