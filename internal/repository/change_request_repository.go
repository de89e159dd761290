package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/usm-portal/event-portal-api/internal/models"
)

// ChangeRequestRepository stores change requests in memory, in arrival order.
type ChangeRequestRepository struct {
	mu      sync.RWMutex
	entries []models.ChangeRequest
}

// NewChangeRequestRepository builds an empty store.
func NewChangeRequestRepository() *ChangeRequestRepository {
	return &ChangeRequestRepository{}
}

// Create appends a change request, assigning an id when absent.
func (r *ChangeRequestRepository) Create(ctx context.Context, req *models.ChangeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	r.entries = append(r.entries, *req)
	return nil
}

// ListByEvent returns change requests targeting the given event.
func (r *ChangeRequestRepository) ListByEvent(ctx context.Context, eventID string) ([]models.ChangeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.ChangeRequest, 0)
	for _, req := range r.entries {
		if req.EventID == eventID {
			result = append(result, req)
		}
	}
	return result, nil
}
