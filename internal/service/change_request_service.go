package service

import (
	"context"
	"errors"
	"fmt"
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

type changeRequestRepository interface {
	Create(ctx context.Context, req *models.ChangeRequest) error
	ListByEvent(ctx context.Context, eventID string) ([]models.ChangeRequest, error)
}

// ChangeRequestService files correction requests against published events.
type ChangeRequestService struct {
	events        eventRepository
	requests      changeRequestRepository
	notifications notificationPublisher
	validator     *validator.Validate
	logger        *zap.Logger
	now           func() time.Time
}

// NewChangeRequestService constructs the service.
func NewChangeRequestService(events eventRepository, requests changeRequestRepository, notifications notificationPublisher, validate *validator.Validate, logger *zap.Logger) *ChangeRequestService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChangeRequestService{
		events:        events,
		requests:      requests,
		notifications: notifications,
		validator:     validate,
		logger:        logger,
		now:           time.Now,
	}
}

// Submit validates and records a change request for an approved event.
func (s *ChangeRequestService) Submit(ctx context.Context, eventID string, req dto.ChangeRequestPayload) (*models.ChangeRequest, error) {
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

	request := &models.ChangeRequest{
		ID:             uuid.NewString(),
		EventID:        event.ID,
		RequesterName:  strings.TrimSpace(req.RequesterName),
		RequesterEmail: strings.TrimSpace(req.RequesterEmail),
		RequesterPhone: strings.TrimSpace(req.RequesterPhone),
		ChangeType:     models.ChangeType(req.ChangeType),
		CurrentValue:   strings.TrimSpace(req.CurrentValue),
		RequestedValue: strings.TrimSpace(req.RequestedValue),
		Reason:         strings.TrimSpace(req.Reason),
		AdditionalInfo: strings.TrimSpace(req.AdditionalInfo),
		SubmittedAt:    s.now().UTC(),
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store change request")
	}

	if s.notifications != nil {
		notification := models.Notification{
			Type:    models.NotificationInfo,
			Title:   "Solicitud de cambios recibida",
			Message: fmt.Sprintf("Se ha recibido una solicitud de cambios para el evento %q.", event.Title),
			EventID: event.ID,
		}
		if err := s.notifications.Publish(ctx, notification); err != nil {
			s.logger.Warn("failed to publish notification", zap.Error(err))
		}
	}

	s.logger.Info("change request submitted",
		zap.String("event_id", event.ID),
		zap.String("change_type", string(request.ChangeType)),
	)
	return request, nil
}

// CurrentValue resolves the present value of the field a change type targets,
// used to prefill the request form.
func (s *ChangeRequestService) CurrentValue(ctx context.Context, eventID string, changeType models.ChangeType) (string, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}

	switch changeType {
	case models.ChangeTitle:
		return event.Title, nil
	case models.ChangeDescription:
		return event.Description, nil
	case models.ChangeDate:
		return event.Date, nil
	case models.ChangeTime:
		return event.Time, nil
	case models.ChangeLocation:
		return event.Location, nil
	case models.ChangeCost:
		return fmt.Sprintf("%d", event.Cost), nil
	case models.ChangeCapacity:
		if event.Capacity == nil {
			return "", nil
		}
		return fmt.Sprintf("%d", *event.Capacity), nil
	case models.ChangeAudience:
		if event.Audience == models.AudienceSpecificDepartment && event.AudienceDetails != "" {
			return event.AudienceDetails, nil
		}
		return models.AudienceLabels[event.Audience], nil
	case models.ChangeRegistrationURL:
		return event.RegistrationURL, nil
	default:
		return "", nil
	}
}
