package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/usm-portal/event-portal-api/internal/dto"
	"github.com/usm-portal/event-portal-api/internal/models"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
)

// ProposalService validates event proposals and files them for moderation.
type ProposalService struct {
	repo          eventRepository
	notifications notificationPublisher
	validator     *validator.Validate
	logger        *zap.Logger
	now           func() time.Time
}

// NewProposalService constructs the service.
func NewProposalService(repo eventRepository, notifications notificationPublisher, validate *validator.Validate, logger *zap.Logger) *ProposalService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProposalService{
		repo:          repo,
		notifications: notifications,
		validator:     validate,
		logger:        logger,
		now:           time.Now,
	}
}

// Submit validates the proposal and creates a pending event. Every invalid
// field is reported at once; a valid payload always enters the pending state.
func (s *ProposalService) Submit(ctx context.Context, req dto.ProposeEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fieldErrors(err)
	}

	now := s.now().UTC()
	proposedBy := strings.TrimSpace(req.ProposedBy)
	if proposedBy == "" {
		proposedBy = strings.TrimSpace(req.Organizer)
	}

	event := &models.Event{
		ID:               uuid.NewString(),
		Title:            strings.TrimSpace(req.Title),
		ShortDescription: strings.TrimSpace(req.ShortDescription),
		Description:      strings.TrimSpace(req.Description),
		Category:         models.EventCategory(req.Category),
		Organizer:        strings.TrimSpace(req.Organizer),
		OrganizerEmail:   strings.TrimSpace(req.OrganizerEmail),
		OrganizerPhone:   strings.TrimSpace(req.OrganizerPhone),
		Date:             req.Date,
		Time:             strings.TrimSpace(req.Time),
		Location:         strings.TrimSpace(req.Location),
		Audience:         models.EventAudience(req.Audience),
		AudienceDetails:  strings.TrimSpace(req.AudienceDetails),
		Cost:             req.Cost,
		Capacity:         req.Capacity,
		RegistrationURL:  strings.TrimSpace(req.RegistrationURL),
		Requirements:     strings.TrimSpace(req.Requirements),
		ContactInfo:      strings.TrimSpace(req.ContactInfo),
		Tags:             normalizeTags(req.Tags),
		Status:           models.StatusUpcoming,
		ApprovalStatus:   models.ApprovalPending,
		ProposedBy:       proposedBy,
		ProposedAt:       &now,
		LastUpdated:      now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create proposal")
	}

	if s.notifications != nil {
		notification := models.Notification{
			Type:    models.NotificationInfo,
			Title:   "Nueva propuesta recibida",
			Message: fmt.Sprintf("El evento %q espera revisión.", event.Title),
			EventID: event.ID,
		}
		if err := s.notifications.Publish(ctx, notification); err != nil {
			s.logger.Warn("failed to publish notification", zap.Error(err))
		}
	}

	s.logger.Info("proposal submitted", zap.String("event_id", event.ID), zap.String("proposed_by", proposedBy))
	return event, nil
}

func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
