package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"staffdesk/internal/model"
	"staffdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	employeeRepo repository.EmployeeRepositoryInterface
}

func NewEmployeeHandler(employeeRepo repository.EmployeeRepositoryInterface) *EmployeeHandler {
	return &EmployeeHandler{employeeRepo: employeeRepo}
}

type EmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
}

type EmployeeResponse struct {
	ID         string `json:"rowguid"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
}

type EmployeeLookupRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func employeeResponse(employee *model.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         employee.ID.String(),
		Name:       employee.Name,
		Email:      employee.Email,
		Department: employee.Department,
		Age:        employee.Age,
		Gender:     employee.Gender,
	}
}

func (h *EmployeeHandler) GetAll(c *gin.Context) {
	employees, err := h.employeeRepo.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("failed to list employees: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employees"})
		return
	}

	response := make([]EmployeeResponse, len(employees))
	for i := range employees {
		response[i] = employeeResponse(&employees[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	employee, err := h.employeeRepo.GetByID(c.Request.Context(), employeeID)
	if err != nil {
		log.Printf("failed to get employee %s: %v", employeeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employee"})
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, employeeResponse(employee))
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	employee := &model.Employee{
		Name:       req.Name,
		Email:      strings.ToLower(req.Email),
		Department: req.Department,
		Age:        req.Age,
		Gender:     req.Gender,
	}

	if err := h.employeeRepo.Create(c.Request.Context(), employee); err != nil {
		log.Printf("failed to create employee: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, employeeResponse(employee))
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	employee := &model.Employee{
		ID:         employeeID,
		Name:       req.Name,
		Email:      strings.ToLower(req.Email),
		Department: req.Department,
		Age:        req.Age,
		Gender:     req.Gender,
	}

	updated, err := h.employeeRepo.Update(c.Request.Context(), employee)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		log.Printf("failed to update employee %s: %v", employeeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}

	c.JSON(http.StatusOK, employeeResponse(updated))
}

// Delete removes an employee together with their assignment rows. Tasks the
// employee owned are left in place.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	deleted, err := h.employeeRepo.Delete(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		log.Printf("failed to delete employee %s: %v", employeeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Employee deleted successfully",
		"employee": employeeResponse(deleted),
	})
}

// Lookup resolves an employee's rowguid from their email address
func (h *EmployeeHandler) Lookup(c *gin.Context) {
	var req EmployeeLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	employee, err := h.employeeRepo.FindByEmail(c.Request.Context(), strings.ToLower(req.Email))
	if err != nil {
		log.Printf("failed to look up employee by email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up employee"})
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, employee.ID.String())
}
