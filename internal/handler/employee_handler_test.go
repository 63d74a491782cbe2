package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"staffdesk/internal/handler"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	employees := args.Get(0)
	if employees == nil {
		return nil, args.Error(1)
	}
	return employees.([]model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	args := m.Called(ctx, id)
	employee := args.Get(0)
	if employee == nil {
		return nil, args.Error(1)
	}
	return employee.(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	args := m.Called(ctx, email)
	employee := args.Get(0)
	if employee == nil {
		return nil, args.Error(1)
	}
	return employee.(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, employee)
	updated := args.Get(0)
	if updated == nil {
		return nil, args.Error(1)
	}
	return updated.(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	args := m.Called(ctx, id)
	deleted := args.Get(0)
	if deleted == nil {
		return nil, args.Error(1)
	}
	return deleted.(*model.Employee), args.Error(1)
}

func setupEmployeeTest() (*gin.Engine, *MockEmployeeRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockRepo := new(MockEmployeeRepository)
	employeeHandler := handler.NewEmployeeHandler(mockRepo)

	r.GET("/employees", employeeHandler.GetAll)
	r.POST("/employees", employeeHandler.Create)
	r.POST("/employees/lookup", employeeHandler.Lookup)
	r.GET("/employees/:rowguid", employeeHandler.GetByID)
	r.DELETE("/employees/:rowguid", employeeHandler.Delete)

	return r, mockRepo
}

func TestEmployeeLookup_Found(t *testing.T) {
	// Arrange
	router, mockRepo := setupEmployeeTest()

	employeeID := uuid.New()
	mockRepo.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(&model.Employee{ID: employeeID, Name: "Alice", Email: "alice@example.com"}, nil)

	body, _ := json.Marshal(handler.EmployeeLookupRequest{Email: "Alice@Example.com"})
	req, _ := http.NewRequest("POST", "/employees/lookup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var rowguid string
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &rowguid))
	assert.Equal(t, employeeID.String(), rowguid)

	mockRepo.AssertExpectations(t)
}

func TestEmployeeLookup_NotFound(t *testing.T) {
	// Arrange
	router, mockRepo := setupEmployeeTest()

	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	body, _ := json.Marshal(handler.EmployeeLookupRequest{Email: "nobody@example.com"})
	req, _ := http.NewRequest("POST", "/employees/lookup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestDeleteEmployee_Success(t *testing.T) {
	// Arrange
	router, mockRepo := setupEmployeeTest()

	employeeID := uuid.New()
	mockRepo.On("Delete", mock.Anything, employeeID).
		Return(&model.Employee{ID: employeeID, Name: "Alice", Email: "alice@example.com"}, nil)

	req, _ := http.NewRequest("DELETE", "/employees/"+employeeID.String(), nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Employee deleted successfully")
	mockRepo.AssertExpectations(t)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	// Arrange
	router, mockRepo := setupEmployeeTest()

	employeeID := uuid.New()
	mockRepo.On("Delete", mock.Anything, employeeID).
		Return(nil, repository.ErrEmployeeNotFound)

	req, _ := http.NewRequest("DELETE", "/employees/"+employeeID.String(), nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockRepo.AssertExpectations(t)
}
