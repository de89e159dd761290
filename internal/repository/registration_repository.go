package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/usm-portal/event-portal-api/internal/models"
)

// RegistrationRepository stores attendee signups in memory, in arrival order.
type RegistrationRepository struct {
	mu      sync.RWMutex
	entries []models.Registration
}

// NewRegistrationRepository builds an empty store.
func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{}
}

// Create appends a registration, assigning an id when absent.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	r.entries = append(r.entries, *reg)
	return nil
}

// ListByEvent returns registrations for the given event, in arrival order.
func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]models.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Registration, 0)
	for _, reg := range r.entries {
		if reg.EventID == eventID {
			result = append(result, reg)
		}
	}
	return result, nil
}
