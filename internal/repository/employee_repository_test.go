package repository_test

import (
	"context"
	"testing"

	"staffdesk/internal/model"
	"staffdesk/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestEmployeeRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	employeeRepo := repository.NewEmployeeRepository(gormDB)

	employeeID := uuid.New()
	employee := &model.Employee{
		Name:       "Alice",
		Email:      "alice@example.com",
		Department: "Engineering",
		Age:        34,
		Gender:     "female",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "employee"`).
		WithArgs(employee.Name, employee.Email, employee.Department, employee.Age, employee.Gender).
		WillReturnRows(sqlmock.NewRows([]string{"rowguid"}).AddRow(employeeID.String()))
	mock.ExpectCommit()

	// Act
	err := employeeRepo.Create(context.Background(), employee)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_FindByEmail_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	employeeRepo := repository.NewEmployeeRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "employee" WHERE email = .*`).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	employee, err := employeeRepo.FindByEmail(context.Background(), "nobody@example.com")

	// Assert
	assert.NoError(t, err) // an absent record is not an error here
	assert.Nil(t, employee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete_CascadesAssignments(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	employeeRepo := repository.NewEmployeeRepository(gormDB)

	employeeID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "employee" WHERE rowguid = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"rowguid", "name", "email"}).
			AddRow(employeeID.String(), "Alice", "alice@example.com"))
	mock.ExpectExec(`DELETE FROM "assignments" WHERE employee_rowguid = .*`).
		WithArgs(employeeID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "employee" WHERE rowguid = .*`).
		WithArgs(employeeID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	deleted, err := employeeRepo.Delete(context.Background(), employeeID)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, deleted)
	assert.Equal(t, "Alice", deleted.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	employeeRepo := repository.NewEmployeeRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "employee" WHERE rowguid = .*`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	// Act
	deleted, err := employeeRepo.Delete(context.Background(), uuid.New())

	// Assert
	assert.ErrorIs(t, err, repository.ErrEmployeeNotFound)
	assert.Nil(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
