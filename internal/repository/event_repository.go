package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/usm-portal/event-portal-api/internal/models"
)

// ErrNotFound is returned when a record id has no match.
var ErrNotFound = errors.New("record not found")

// EventRepository is an in-memory, insertion-ordered event store. The portal
// has no persistence layer; a SQL-backed implementation would satisfy the
// same interface the services consume.
type EventRepository struct {
	mu     sync.RWMutex
	events []models.Event
	now    func() time.Time
}

// EventRepositoryOption configures the repository.
type EventRepositoryOption func(*EventRepository)

// WithClock overrides the time source used by date-bucket filters.
func WithClock(now func() time.Time) EventRepositoryOption {
	return func(r *EventRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// NewEventRepository builds the store from the given seed, preserving order.
func NewEventRepository(seed []models.Event, opts ...EventRepositoryOption) *EventRepository {
	repo := &EventRepository{
		events: append([]models.Event(nil), seed...),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(repo)
		}
	}
	return repo
}

// List returns the ordered subsequence of approved events matching every
// active filter dimension. The source collection is never mutated and
// non-approved events are never returned regardless of the filter.
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.now()
	result := make([]models.Event, 0, len(r.events))
	for _, event := range r.events {
		if event.ApprovalStatus != models.ApprovalApproved {
			continue
		}
		if eventMatches(event, filter, now) {
			result = append(result, cloneEvent(event))
		}
	}
	return result, nil
}

// ListByApproval returns events in the given moderation state, in store order.
func (r *EventRepository) ListByApproval(ctx context.Context, status models.ApprovalStatus) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Event, 0)
	for _, event := range r.events {
		if event.ApprovalStatus == status {
			result = append(result, cloneEvent(event))
		}
	}
	return result, nil
}

// GetByID returns a copy of the event with the given id.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, event := range r.events {
		if event.ID == id {
			clone := cloneEvent(event)
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new event, assigning an id when absent.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	r.events = append(r.events, cloneEvent(*event))
	return nil
}

// Update replaces the stored event with the same id.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID == event.ID {
			r.events[i] = cloneEvent(*event)
			return nil
		}
	}
	return ErrNotFound
}

func cloneEvent(e models.Event) models.Event {
	clone := e
	clone.Tags = append([]string(nil), e.Tags...)
	if e.Capacity != nil {
		v := *e.Capacity
		clone.Capacity = &v
	}
	if e.CurrentAttendees != nil {
		v := *e.CurrentAttendees
		clone.CurrentAttendees = &v
	}
	if e.ProposedAt != nil {
		v := *e.ProposedAt
		clone.ProposedAt = &v
	}
	if e.ApprovedAt != nil {
		v := *e.ApprovedAt
		clone.ApprovedAt = &v
	}
	return clone
}
