package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/usm-portal/event-portal-api/internal/dto"
	"github.com/usm-portal/event-portal-api/internal/models"
	"github.com/usm-portal/event-portal-api/internal/repository"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
)

type eventRepository interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	ListByApproval(ctx context.Context, status models.ApprovalStatus) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
}

// EventService serves the public event catalog: filtered listing and detail.
type EventService struct {
	repo   eventRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(repo eventRepository, cache *CacheService, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, cache: cache, logger: logger}
}

// List returns approved events matching the query. The second return value
// reports whether the response was served from cache.
func (s *EventService) List(ctx context.Context, query dto.EventQuery) ([]models.Event, bool, error) {
	filter := query.Filter()
	key := listCacheKey(filter)

	var cached []models.Event
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	if err := s.cache.Set(ctx, key, events, 0); err != nil {
		s.logger.Warn("failed to cache event listing", zap.String("key", key), zap.Error(err))
	}
	return events, false, nil
}

// Get returns an approved event by id. Events outside the approved state are
// not visible to the public and report not found.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	if event.ApprovalStatus != models.ApprovalApproved {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	return event, nil
}

func listCacheKey(f models.EventFilter) string {
	return fmt.Sprintf("events:list:%s:%s:%s:%s:%s", f.Audience, f.Category, f.Cost, f.Date, f.Search)
}
