package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usm-portal/event-portal-api/internal/dto"
	"github.com/usm-portal/event-portal-api/internal/models"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
	"github.com/usm-portal/event-portal-api/pkg/response"
)

type moderationService interface {
	ListByStatus(ctx context.Context, status string) ([]models.Event, error)
	Review(ctx context.Context, id string, req dto.ReviewEventRequest, reviewer string) (*models.Event, error)
}

// ModerationHandler exposes the admin review workflow.
type ModerationHandler struct {
	service moderationService
}

// NewModerationHandler constructs the handler.
func NewModerationHandler(service moderationService) *ModerationHandler {
	return &ModerationHandler{service: service}
}

// List godoc
// @Summary List events by approval status
// @Tags Admin
// @Produce json
// @Param status query string false "pending, approved, rejected or needs-changes (default pending)"
// @Success 200 {object} response.Envelope
// @Router /admin/events [get]
func (h *ModerationHandler) List(c *gin.Context) {
	events, err := h.service.ListByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events)
}

// Review godoc
// @Summary Review a pending event
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body dto.ReviewEventRequest true "Review decision"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admin/events/{id}/review [post]
func (h *ModerationHandler) Review(c *gin.Context) {
	var req dto.ReviewEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid review payload"))
		return
	}
	event, err := h.service.Review(c.Request.Context(), c.Param("id"), req, reviewerFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}
