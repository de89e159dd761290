package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/usm-portal/event-portal-api/internal/dto"
	"github.com/usm-portal/event-portal-api/internal/models"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
	"github.com/usm-portal/event-portal-api/pkg/response"
)

type proposalService interface {
	Submit(ctx context.Context, req dto.ProposeEventRequest) (*models.Event, error)
}

// ProposalHandler receives event proposals.
type ProposalHandler struct {
	service proposalService
}

// NewProposalHandler constructs the handler.
func NewProposalHandler(service proposalService) *ProposalHandler {
	return &ProposalHandler{service: service}
}

// Create godoc
// @Summary Submit an event proposal
// @Tags Proposals
// @Accept json
// @Produce json
// @Param payload body dto.ProposeEventRequest true "Proposal payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /events/proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	var req dto.ProposeEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid proposal payload"))
		return
	}
	event, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}
