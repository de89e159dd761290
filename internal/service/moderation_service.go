package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/usm-portal/event-portal-api/internal/dto"
	"github.com/usm-portal/event-portal-api/internal/models"
	"github.com/usm-portal/event-portal-api/internal/repository"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
)

type notificationPublisher interface {
	Publish(ctx context.Context, n models.Notification) error
}

// ModerationService applies admin decisions to proposed events. Pending is
// the only state with outgoing transitions; there is no resubmission path
// out of rejected or needs-changes.
type ModerationService struct {
	repo          eventRepository
	notifications notificationPublisher
	cache         *CacheService
	logger        *zap.Logger
	now           func() time.Time
}

// ModerationServiceOption configures the service.
type ModerationServiceOption func(*ModerationService)

// WithModerationClock overrides the timestamp source.
func WithModerationClock(now func() time.Time) ModerationServiceOption {
	return func(s *ModerationService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewModerationService constructs the service.
func NewModerationService(repo eventRepository, notifications notificationPublisher, cache *CacheService, logger *zap.Logger, opts ...ModerationServiceOption) *ModerationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &ModerationService{
		repo:          repo,
		notifications: notifications,
		cache:         cache,
		logger:        logger,
		now:           time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc
}

// ListByStatus returns events in the given moderation state for the admin tabs.
func (s *ModerationService) ListByStatus(ctx context.Context, raw string) ([]models.Event, error) {
	status := models.ApprovalStatus(strings.TrimSpace(raw))
	if raw == "" {
		status = models.ApprovalPending
	}
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown approval status: %s", raw))
	}
	events, err := s.repo.ListByApproval(ctx, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	return events, nil
}

// Review applies the reviewer decision. Reject and request-changes require
// their side-data; a missing input leaves the event untouched and reports
// which field is absent.
func (s *ModerationService) Review(ctx context.Context, id string, req dto.ReviewEventRequest, reviewer string) (*models.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	if event.ApprovalStatus != models.ApprovalPending {
		return nil, appErrors.Clone(appErrors.ErrConflict, "event already reviewed")
	}

	now := s.now().UTC()
	var notification models.Notification

	switch req.Action {
	case dto.ActionApprove:
		event.ApprovalStatus = models.ApprovalApproved
		event.ApprovedBy = reviewer
		event.ApprovedAt = &now
		notification = models.Notification{
			Type:    models.NotificationSuccess,
			Title:   "Evento aprobado",
			Message: fmt.Sprintf("El evento %q ha sido aprobado y publicado.", event.Title),
			EventID: event.ID,
		}
	case dto.ActionReject:
		reason := strings.TrimSpace(req.RejectionReason)
		if reason == "" {
			return nil, appErrors.NewMissingField("rejectionReason", "Debes proporcionar una razón para el rechazo")
		}
		event.ApprovalStatus = models.ApprovalRejected
		event.RejectionReason = reason
		notification = models.Notification{
			Type:    models.NotificationError,
			Title:   "Evento rechazado",
			Message: fmt.Sprintf("El evento %q ha sido rechazado.", event.Title),
			EventID: event.ID,
		}
	case dto.ActionRequestChanges:
		notes := strings.TrimSpace(req.AdminNotes)
		if notes == "" {
			return nil, appErrors.NewMissingField("adminNotes", "Debes proporcionar notas sobre los cambios requeridos")
		}
		event.ApprovalStatus = models.ApprovalNeedsChanges
		event.AdminNotes = notes
		notification = models.Notification{
			Type:    models.NotificationWarning,
			Title:   "Cambios solicitados",
			Message: fmt.Sprintf("Se han solicitado cambios para el evento %q.", event.Title),
			EventID: event.ID,
		}
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported review action: %s", req.Action))
	}

	event.LastUpdated = now
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}

	// Approval changes what the public listing returns.
	if req.Action == dto.ActionApprove {
		if err := s.cache.InvalidatePattern(ctx, "events:list:*"); err != nil {
			s.logger.Warn("failed to invalidate listing cache", zap.Error(err))
		}
	}

	s.publish(ctx, notification)
	s.logger.Info("event reviewed",
		zap.String("event_id", event.ID),
		zap.String("action", string(req.Action)),
		zap.String("reviewer", reviewer),
	)
	return event, nil
}

func (s *ModerationService) publish(ctx context.Context, n models.Notification) {
	if s.notifications == nil || n.Title == "" {
		return
	}
	if err := s.notifications.Publish(ctx, n); err != nil {
		s.logger.Warn("failed to publish notification", zap.Error(err))
	}
}
