package handler

import (
	"errors"
	"log"
	"net/http"

	"staffdesk/internal/dates"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projectRepo repository.ProjectRepositoryInterface
	normalizer  *dates.Normalizer
}

func NewProjectHandler(projectRepo repository.ProjectRepositoryInterface, normalizer *dates.Normalizer) *ProjectHandler {
	return &ProjectHandler{
		projectRepo: projectRepo,
		normalizer:  normalizer,
	}
}

type ProjectRequest struct {
	Name     string `json:"name" binding:"required"`
	Deadline string `json:"deadline"`
}

type ProjectResponse struct {
	ID       string  `json:"rowguid"`
	Name     string  `json:"name"`
	Deadline *string `json:"deadline"`
}

func (h *ProjectHandler) projectResponse(project *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:       project.ID.String(),
		Name:     project.Name,
		Deadline: h.normalizer.Format(project.Deadline),
	}
}

func (h *ProjectHandler) GetAll(c *gin.Context) {
	projects, err := h.projectRepo.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("failed to list projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, len(projects))
	for i := range projects {
		response[i] = h.projectResponse(&projects[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	deadline, err := h.normalizer.Parse(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format. Accepted formats: ISO-8601 or DD-MM-YYYY.",
		})
		return
	}

	project := &model.Project{
		Name:     req.Name,
		Deadline: deadline,
	}

	if err := h.projectRepo.Create(c.Request.Context(), project); err != nil {
		log.Printf("failed to create project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, h.projectResponse(project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	deadline, err := h.normalizer.Parse(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format. Accepted formats: ISO-8601 or DD-MM-YYYY.",
		})
		return
	}

	project := &model.Project{
		ID:       projectID,
		Name:     req.Name,
		Deadline: deadline,
	}

	updated, err := h.projectRepo.Update(c.Request.Context(), project)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		log.Printf("failed to update project %s: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, h.projectResponse(updated))
}

// Delete removes a project, its tasks, and the assignments of those tasks
func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	deleted, err := h.projectRepo.Delete(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		log.Printf("failed to delete project %s: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
		"project": h.projectResponse(deleted),
	})
}
