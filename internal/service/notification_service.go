package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/usm-portal/event-portal-api/internal/dto"
	"github.com/usm-portal/event-portal-api/internal/models"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
)

type notificationRepository interface {
	List(ctx context.Context) ([]models.Notification, error)
	Add(ctx context.Context, n models.Notification) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// NotificationService exposes the notification ledger. Mark and delete
// operations on absent ids succeed silently, matching the ledger policy.
type NotificationService struct {
	repo   notificationRepository
	logger *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(repo notificationRepository, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{repo: repo, logger: logger}
}

// Feed partitions the ledger into unread and read entries in ledger order.
func (s *NotificationService) Feed(ctx context.Context) (*dto.NotificationFeed, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notifications")
	}
	feed := &dto.NotificationFeed{
		Unread: make([]models.Notification, 0, len(entries)),
		Read:   make([]models.Notification, 0, len(entries)),
	}
	for _, n := range entries {
		if n.Read {
			feed.Read = append(feed.Read, n)
		} else {
			feed.Unread = append(feed.Unread, n)
		}
	}
	return feed, nil
}

// Publish appends a new ledger entry.
func (s *NotificationService) Publish(ctx context.Context, n models.Notification) error {
	if err := s.repo.Add(ctx, n); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add notification")
	}
	return nil
}

// MarkRead flags the entry as read; absent ids are a silent no-op.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark notification read")
	}
	return nil
}

// MarkAllRead flags every entry as read.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	if err := s.repo.MarkAllRead(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark notifications read")
	}
	return nil
}

// Delete removes the entry; absent ids are a silent no-op.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete notification")
	}
	return nil
}
