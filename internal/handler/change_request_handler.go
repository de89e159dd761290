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

type changeRequestService interface {
	Submit(ctx context.Context, eventID string, req dto.ChangeRequestPayload) (*models.ChangeRequest, error)
	CurrentValue(ctx context.Context, eventID string, changeType models.ChangeType) (string, error)
}

// ChangeRequestHandler receives correction requests for published events.
type ChangeRequestHandler struct {
	service changeRequestService
}

// NewChangeRequestHandler constructs the handler.
func NewChangeRequestHandler(service changeRequestService) *ChangeRequestHandler {
	return &ChangeRequestHandler{service: service}
}

// Create godoc
// @Summary Submit a change request for an event
// @Tags Change Requests
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body dto.ChangeRequestPayload true "Change request payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /events/{id}/change-requests [post]
func (h *ChangeRequestHandler) Create(c *gin.Context) {
	var req dto.ChangeRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid change request payload"))
		return
	}
	request, err := h.service.Submit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, request)
}

// CurrentValue godoc
// @Summary Resolve the current value for a change type
// @Tags Change Requests
// @Produce json
// @Param id path string true "Event ID"
// @Param type query string true "Change type"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/change-requests/current-value [get]
func (h *ChangeRequestHandler) CurrentValue(c *gin.Context) {
	changeType := models.ChangeType(c.Query("type"))
	if !changeType.Valid() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown change type"))
		return
	}
	value, err := h.service.CurrentValue(c.Request.Context(), c.Param("id"), changeType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"changeType": changeType, "currentValue": value})
}
