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

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Add(ctx context.Context, assignment *model.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Remove(ctx context.Context, taskID, employeeID uuid.UUID) (*model.Assignment, error) {
	args := m.Called(ctx, taskID, employeeID)
	removed := args.Get(0)
	if removed == nil {
		return nil, args.Error(1)
	}
	return removed.(*model.Assignment), args.Error(1)
}

func setupAssignmentTest() (*gin.Engine, *MockAssignmentRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockRepo := new(MockAssignmentRepository)
	assignmentHandler := handler.NewAssignmentHandler(mockRepo)

	r.POST("/assignments", assignmentHandler.Add)
	r.DELETE("/assignments", assignmentHandler.Remove)

	return r, mockRepo
}

func TestAddAssignment_Success(t *testing.T) {
	// Arrange
	router, mockRepo := setupAssignmentTest()

	taskID := uuid.New()
	employeeID := uuid.New()

	mockRepo.On("Add", mock.Anything, mock.AnythingOfType("*model.Assignment")).Return(nil)

	body, _ := json.Marshal(handler.AssignmentRequest{
		TaskID:     taskID.String(),
		EmployeeID: employeeID.String(),
		Percentage: 60,
	})
	req, _ := http.NewRequest("POST", "/assignments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)

	var response handler.AssignmentResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, taskID.String(), response.TaskID)
	assert.Equal(t, employeeID.String(), response.EmployeeID)
	assert.Equal(t, 60.0, response.Percentage)

	mockRepo.AssertExpectations(t)
}

func TestAddAssignment_InvalidID(t *testing.T) {
	// Arrange
	router, mockRepo := setupAssignmentTest()

	body, _ := json.Marshal(handler.AssignmentRequest{
		TaskID:     "not-a-uuid",
		EmployeeID: uuid.NewString(),
		Percentage: 60,
	})
	req, _ := http.NewRequest("POST", "/assignments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockRepo.AssertNotCalled(t, "Add")
}

func TestAddAssignment_StoreFailurePropagates(t *testing.T) {
	// Arrange
	router, mockRepo := setupAssignmentTest()

	// Duplicate key or dangling foreign key comes back as a store failure
	mockRepo.On("Add", mock.Anything, mock.AnythingOfType("*model.Assignment")).
		Return(assert.AnError)

	body, _ := json.Marshal(handler.AssignmentRequest{
		TaskID:     uuid.NewString(),
		EmployeeID: uuid.NewString(),
		Percentage: 40,
	})
	req, _ := http.NewRequest("POST", "/assignments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestRemoveAssignment_Found(t *testing.T) {
	// Arrange
	router, mockRepo := setupAssignmentTest()

	taskID := uuid.New()
	employeeID := uuid.New()
	removed := &model.Assignment{TaskID: taskID, EmployeeID: employeeID, Percentage: 60}

	mockRepo.On("Remove", mock.Anything, taskID, employeeID).Return(removed, nil)

	body, _ := json.Marshal(handler.AssignmentRequest{
		TaskID:     taskID.String(),
		EmployeeID: employeeID.String(),
	})
	req, _ := http.NewRequest("DELETE", "/assignments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), taskID.String())
	mockRepo.AssertExpectations(t)
}

func TestRemoveAssignment_AbsentIsIdempotent(t *testing.T) {
	// Arrange
	router, mockRepo := setupAssignmentTest()

	taskID := uuid.New()
	employeeID := uuid.New()

	mockRepo.On("Remove", mock.Anything, taskID, employeeID).Return(nil, nil)

	body, _ := json.Marshal(handler.AssignmentRequest{
		TaskID:     taskID.String(),
		EmployeeID: employeeID.String(),
	})
	req, _ := http.NewRequest("DELETE", "/assignments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"assignment":null`)
	mockRepo.AssertExpectations(t)
}
