package handler

import (
	"log"
	"net/http"

	"staffdesk/internal/model"
	"staffdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	assignmentRepo repository.AssignmentRepositoryInterface
}

func NewAssignmentHandler(assignmentRepo repository.AssignmentRepositoryInterface) *AssignmentHandler {
	return &AssignmentHandler{assignmentRepo: assignmentRepo}
}

type AssignmentRequest struct {
	TaskID     string  `json:"task_rowguid" binding:"required,uuid"`
	EmployeeID string  `json:"employee_rowguid" binding:"required,uuid"`
	Percentage float64 `json:"percentage"`
}

type AssignmentResponse struct {
	TaskID     string  `json:"task_rowguid"`
	EmployeeID string  `json:"employee_rowguid"`
	Percentage float64 `json:"percentage"`
}

// Add creates one task/employee association with its share of effort. A
// duplicate pair or an unknown task/employee surfaces as a store failure;
// there is no pre-check here.
func (h *AssignmentHandler) Add(c *gin.Context) {
	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	taskID, _ := uuid.Parse(req.TaskID)
	employeeID, _ := uuid.Parse(req.EmployeeID)

	assignment := &model.Assignment{
		TaskID:     taskID,
		EmployeeID: employeeID,
		Percentage: req.Percentage,
	}

	if err := h.assignmentRepo.Add(c.Request.Context(), assignment); err != nil {
		log.Printf("failed to add assignment (%s, %s): %v", taskID, employeeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add assignment"})
		return
	}

	c.JSON(http.StatusCreated, AssignmentResponse{
		TaskID:     assignment.TaskID.String(),
		EmployeeID: assignment.EmployeeID.String(),
		Percentage: assignment.Percentage,
	})
}

// Remove deletes the association matching the composite key. Removing an
// absent association is not an error; the response carries a null assignment.
func (h *AssignmentHandler) Remove(c *gin.Context) {
	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	taskID, _ := uuid.Parse(req.TaskID)
	employeeID, _ := uuid.Parse(req.EmployeeID)

	removed, err := h.assignmentRepo.Remove(c.Request.Context(), taskID, employeeID)
	if err != nil {
		log.Printf("failed to remove assignment (%s, %s): %v", taskID, employeeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove assignment"})
		return
	}

	var body *AssignmentResponse
	if removed != nil {
		body = &AssignmentResponse{
			TaskID:     removed.TaskID.String(),
			EmployeeID: removed.EmployeeID.String(),
			Percentage: removed.Percentage,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Assignment removed successfully",
		"assignment": body,
	})
}
