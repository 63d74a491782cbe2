package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"staffdesk/internal/dates"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskRepo   repository.TaskRepositoryInterface
	normalizer *dates.Normalizer
}

func NewTaskHandler(taskRepo repository.TaskRepositoryInterface, normalizer *dates.Normalizer) *TaskHandler {
	return &TaskHandler{
		taskRepo:   taskRepo,
		normalizer: normalizer,
	}
}

// TaskRequest carries a create or update payload. Dates arrive as strings in
// any of the accepted formats and go through the normalizer before persistence.
type TaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Start       string `json:"start"`
	Deadline    string `json:"deadline"`
	Type        string `json:"type"`
}

type TaskResponse struct {
	ID          string  `json:"rowguid"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Start       *string `json:"start"`
	Deadline    *string `json:"deadline"`
	Type        string  `json:"type"`
	EmployeeID  *string `json:"employee_rowguid,omitempty"`
	ProjectID   *string `json:"project_rowguid,omitempty"`
}

// AssignmentEntry is one row of a task's assignment list in the aggregated
// project view.
type AssignmentEntry struct {
	EmployeeID string  `json:"employee_rowguid"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// ProjectTaskResponse is a task enriched with its assignment list. The list is
// always present, empty for unassigned tasks.
type ProjectTaskResponse struct {
	TaskResponse
	Assignments []AssignmentEntry `json:"assignments"`
}

func (h *TaskHandler) taskResponse(task *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Start:       h.normalizer.Format(task.Start),
		Deadline:    h.normalizer.Format(task.Deadline),
		Type:        task.Type,
	}
	if task.EmployeeID != nil {
		employeeID := task.EmployeeID.String()
		resp.EmployeeID = &employeeID
	}
	if task.ProjectID != nil {
		projectID := task.ProjectID.String()
		resp.ProjectID = &projectID
	}
	return resp
}

// parseDates validates the start and deadline fields of a request. A failure
// means the whole request is rejected before any write is attempted.
func (h *TaskHandler) parseDates(req *TaskRequest) (start, deadline *time.Time, err error) {
	start, err = h.normalizer.Parse(req.Start)
	if err != nil {
		return nil, nil, err
	}
	deadline, err = h.normalizer.Parse(req.Deadline)
	if err != nil {
		return nil, nil, err
	}
	return start, deadline, nil
}

func (h *TaskHandler) badDateFormat(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Invalid date format. Accepted formats: ISO-8601 or DD-MM-YYYY.",
	})
}

// ListByEmployee returns all tasks directly owned by an employee
func (h *TaskHandler) ListByEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	tasks, err := h.taskRepo.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		log.Printf("failed to list tasks for employee %s: %v", employeeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = h.taskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, response)
}

// ListByProject returns all tasks scoped to a project, each with its
// assignment list
func (h *TaskHandler) ListByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	tasks, err := h.taskRepo.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		log.Printf("failed to list tasks for project %s: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]ProjectTaskResponse, len(tasks))
	for i := range tasks {
		entries := make([]AssignmentEntry, len(tasks[i].Assignments))
		for j, assignment := range tasks[i].Assignments {
			entries[j] = AssignmentEntry{
				EmployeeID: assignment.EmployeeID.String(),
				Name:       assignment.Employee.Name,
				Percentage: assignment.Percentage,
			}
		}
		response[i] = ProjectTaskResponse{
			TaskResponse: h.taskResponse(&tasks[i]),
			Assignments:  entries,
		}
	}
	c.JSON(http.StatusOK, response)
}

// CreateUnderProject creates a new task scoped to a project
func (h *TaskHandler) CreateUnderProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}
	h.create(c, nil, &projectID)
}

// CreateUnderEmployee creates a new task directly owned by an employee
func (h *TaskHandler) CreateUnderEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}
	h.create(c, &employeeID, nil)
}

func (h *TaskHandler) create(c *gin.Context, employeeID, projectID *uuid.UUID) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	start, deadline, err := h.parseDates(&req)
	if err != nil {
		h.badDateFormat(c)
		return
	}

	// An omitted start defaults to the moment of creation; it is never
	// persisted as null.
	if start == nil {
		now := time.Now()
		start = &now
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Start:       start,
		Deadline:    deadline,
		Type:        req.Type,
		EmployeeID:  employeeID,
		ProjectID:   projectID,
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		log.Printf("failed to create task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, h.taskResponse(task))
}

// Update replaces the mutable fields of a task. An omitted start keeps the
// stored value; deadline and type are overwritten with whatever was sent.
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	start, deadline, err := h.parseDates(&req)
	if err != nil {
		h.badDateFormat(c)
		return
	}

	task := &model.Task{
		ID:          taskID,
		Title:       req.Title,
		Description: req.Description,
		Start:       start,
		Deadline:    deadline,
		Type:        req.Type,
	}

	updated, err := h.taskRepo.Update(c.Request.Context(), task)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("failed to update task %s: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, h.taskResponse(updated))
}

// Delete removes a task and its assignments. An absent task is not an error:
// the response is 200 with a null body, matching the historical behavior.
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	deleted, err := h.taskRepo.Delete(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Printf("failed to delete task %s: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, h.taskResponse(deleted))
}
