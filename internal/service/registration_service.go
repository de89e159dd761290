package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/usm-portal/event-portal-api/internal/dto"
	"github.com/usm-portal/event-portal-api/internal/models"
	"github.com/usm-portal/event-portal-api/internal/repository"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
)

type registrationRepository interface {
	Create(ctx context.Context, reg *models.Registration) error
	ListByEvent(ctx context.Context, eventID string) ([]models.Registration, error)
}

// RegistrationService handles attendee signups for approved events. It keeps
// currentAttendees within capacity; a full event refuses further signups.
type RegistrationService struct {
	events        eventRepository
	registrations registrationRepository
	validator     *validator.Validate
	logger        *zap.Logger
	now           func() time.Time
}

// NewRegistrationService constructs the service.
func NewRegistrationService(events eventRepository, registrations registrationRepository, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{
		events:        events,
		registrations: registrations,
		validator:     validate,
		logger:        logger,
		now:           time.Now,
	}
}

// Register validates the signup and records it against the event.
func (s *RegistrationService) Register(ctx context.Context, eventID string, req dto.RegisterRequest) (*dto.RegistrationConfirmation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fieldErrors(err)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	if event.ApprovalStatus != models.ApprovalApproved {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}

	attendees := 0
	if event.CurrentAttendees != nil {
		attendees = *event.CurrentAttendees
	}
	if event.Capacity != nil && attendees >= *event.Capacity {
		return nil, appErrors.Clone(appErrors.ErrConflict, "event is at full capacity")
	}

	registration := &models.Registration{
		ID:           uuid.NewString(),
		EventID:      event.ID,
		Nombre:       strings.TrimSpace(req.Nombre),
		Apellidos:    strings.TrimSpace(req.Apellidos),
		Edad:         req.Edad,
		Email:        strings.TrimSpace(req.Email),
		Telefono:     strings.TrimSpace(req.Telefono),
		RegisteredAt: s.now().UTC(),
	}
	if err := s.registrations.Create(ctx, registration); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store registration")
	}

	attendees++
	event.CurrentAttendees = &attendees
	event.LastUpdated = s.now().UTC()
	if err := s.events.Update(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update attendee count")
	}

	confirmation := &dto.RegistrationConfirmation{
		Registration: registration,
		EventTitle:   event.Title,
	}
	if event.Capacity != nil {
		left := *event.Capacity - attendees
		confirmation.SpotsLeft = &left
	}

	s.logger.Info("registration recorded", zap.String("event_id", event.ID), zap.String("email", registration.Email))
	return confirmation, nil
}
