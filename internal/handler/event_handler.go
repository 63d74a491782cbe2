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

type EventHandler struct {
	eventRepo  repository.EventRepositoryInterface
	normalizer *dates.Normalizer
}

func NewEventHandler(eventRepo repository.EventRepositoryInterface, normalizer *dates.Normalizer) *EventHandler {
	return &EventHandler{
		eventRepo:  eventRepo,
		normalizer: normalizer,
	}
}

type EventRequest struct {
	Title string `json:"title" binding:"required"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type EventResponse struct {
	ID    string  `json:"rowguid"`
	Title string  `json:"title"`
	Start *string `json:"start"`
	End   *string `json:"end"`
}

func (h *EventHandler) eventResponse(event *model.Event) EventResponse {
	return EventResponse{
		ID:    event.ID.String(),
		Title: event.Title,
		Start: h.normalizer.Format(event.Start),
		End:   h.normalizer.Format(event.End),
	}
}

func (h *EventHandler) GetAll(c *gin.Context) {
	events, err := h.eventRepo.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("failed to list events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve events"})
		return
	}

	response := make([]EventResponse, len(events))
	for i := range events {
		response[i] = h.eventResponse(&events[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	start, err := h.normalizer.Parse(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format. Accepted formats: ISO-8601 or DD-MM-YYYY.",
		})
		return
	}
	end, err := h.normalizer.Parse(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format. Accepted formats: ISO-8601 or DD-MM-YYYY.",
		})
		return
	}

	event := &model.Event{
		Title: req.Title,
		Start: start,
		End:   end,
	}

	if err := h.eventRepo.Create(c.Request.Context(), event); err != nil {
		log.Printf("failed to create event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, h.eventResponse(event))
}

func (h *EventHandler) Update(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	start, err := h.normalizer.Parse(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format. Accepted formats: ISO-8601 or DD-MM-YYYY.",
		})
		return
	}
	end, err := h.normalizer.Parse(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format. Accepted formats: ISO-8601 or DD-MM-YYYY.",
		})
		return
	}

	event := &model.Event{
		ID:    eventID,
		Title: req.Title,
		Start: start,
		End:   end,
	}

	updated, err := h.eventRepo.Update(c.Request.Context(), event)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		log.Printf("failed to update event %s: %v", eventID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, h.eventResponse(updated))
}

func (h *EventHandler) Delete(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("rowguid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	if err := h.eventRepo.Delete(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		log.Printf("failed to delete event %s: %v", eventID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
