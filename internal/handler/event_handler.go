package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usm-portal/event-portal-api/internal/dto"
	"github.com/usm-portal/event-portal-api/internal/middleware"
	"github.com/usm-portal/event-portal-api/internal/models"
	"github.com/usm-portal/event-portal-api/pkg/response"
)

type eventService interface {
	List(ctx context.Context, query dto.EventQuery) ([]models.Event, bool, error)
	Get(ctx context.Context, id string) (*models.Event, error)
}

// EventHandler exposes the public event catalog.
type EventHandler struct {
	service eventService
}

// NewEventHandler constructs the handler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

// List godoc
// @Summary List approved events
// @Tags Events
// @Produce json
// @Param audience query string false "Audience selector or all"
// @Param category query string false "Category selector or all"
// @Param cost query string false "all, free or paid"
// @Param date query string false "all, this-week, this-month or next-month"
// @Param q query string false "Free-text search"
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	query := dto.EventQuery{
		Audience: c.Query("audience"),
		Category: c.Query("category"),
		Cost:     c.Query("cost"),
		Date:     c.Query("date"),
		Search:   c.Query("q"),
	}
	events, cacheHit, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["count"] = len(events)
	response.JSON(c, http.StatusOK, events, meta)
}

// Get godoc
// @Summary Get approved event detail
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}
