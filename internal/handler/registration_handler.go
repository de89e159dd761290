package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/usm-portal/event-portal-api/internal/dto"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
	"github.com/usm-portal/event-portal-api/pkg/response"
)

type registrationService interface {
	Register(ctx context.Context, eventID string, req dto.RegisterRequest) (*dto.RegistrationConfirmation, error)
}

// RegistrationHandler receives attendee signups.
type RegistrationHandler struct {
	service registrationService
}

// NewRegistrationHandler constructs the handler.
func NewRegistrationHandler(service registrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Create godoc
// @Summary Register an attendee for an event
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /events/{id}/registrations [post]
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid registration payload"))
		return
	}
	confirmation, err := h.service.Register(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, confirmation)
}
