package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/usm-portal/event-portal-api/internal/models"
)

// NotificationRepository is the in-memory notification ledger. Entries keep
// insertion order; new entries are prepended so the list stays newest-first
// by convention rather than by sorting. Operations on absent ids are silent
// no-ops, matching the portal's documented policy.
type NotificationRepository struct {
	mu      sync.RWMutex
	entries []models.Notification
}

// NewNotificationRepository builds the ledger from the given seed.
func NewNotificationRepository(seed []models.Notification) *NotificationRepository {
	return &NotificationRepository{entries: append([]models.Notification(nil), seed...)}
}

// List returns all entries in ledger order.
func (r *NotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Notification(nil), r.entries...), nil
}

// Add prepends a new entry, assigning id and timestamp when absent.
func (r *NotificationRepository) Add(ctx context.Context, n models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now().UTC()
	}
	r.entries = append([]models.Notification{n}, r.entries...)
	return nil
}

// MarkRead flags the entry as read. Marking an already-read or absent entry
// is a no-op.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries[i].Read = true
			return nil
		}
	}
	return nil
}

// MarkAllRead flags every entry as read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		r.entries[i].Read = true
	}
	return nil
}

// Delete removes the entry with the given id; absent ids are a no-op.
func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}
