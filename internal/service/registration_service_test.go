package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/usm-portal/event-portal-api/internal/dto"
	"github.com/usm-portal/event-portal-api/internal/models"
	"github.com/usm-portal/event-portal-api/internal/repository"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
)

func validRegistration() dto.RegisterRequest {
	return dto.RegisterRequest{
		Nombre:    "María",
		Apellidos: "González",
		Edad:      21,
		Email:     "maria@usm.cl",
		Telefono:  "+56912345678",
	}
}

func capacityEvent(id string, capacity, attendees int) models.Event {
	return models.Event{
		ID:               id,
		Title:            "Taller de Arduino",
		Date:             "2026-04-10",
		Audience:         models.AudienceStudentsOnly,
		Category:         models.CategoryTalleres,
		ApprovalStatus:   models.ApprovalApproved,
		Capacity:         &capacity,
		CurrentAttendees: &attendees,
	}
}

func newRegistrationFixture(t *testing.T, seed ...models.Event) (*RegistrationService, *repository.EventRepository) {
	t.Helper()
	events := repository.NewEventRepository(seed)
	svc := NewRegistrationService(events, repository.NewRegistrationRepository(), NewValidator(), zap.NewNop())
	return svc, events
}

func TestRegistrationRegister(t *testing.T) {
	svc, events := newRegistrationFixture(t, capacityEvent("e1", 30, 28))

	got, err := svc.Register(context.Background(), "e1", validRegistration())
	require.NoError(t, err)
	require.NotNil(t, got.Registration)
	assert.NotEmpty(t, got.Registration.ID)
	assert.Equal(t, "Taller de Arduino", got.EventTitle)
	require.NotNil(t, got.SpotsLeft)
	assert.Equal(t, 1, *got.SpotsLeft)

	stored, err := events.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	require.NotNil(t, stored.CurrentAttendees)
	assert.Equal(t, 29, *stored.CurrentAttendees)
}

func TestRegistrationRegisterFullCapacity(t *testing.T) {
	svc, events := newRegistrationFixture(t, capacityEvent("e1", 30, 30))

	_, err := svc.Register(context.Background(), "e1", validRegistration())
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)

	stored, err := events.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, 30, *stored.CurrentAttendees)
}

func TestRegistrationRegisterUnlimitedCapacity(t *testing.T) {
	open := capacityEvent("e1", 0, 0)
	open.Capacity = nil
	open.CurrentAttendees = nil
	svc, events := newRegistrationFixture(t, open)

	got, err := svc.Register(context.Background(), "e1", validRegistration())
	require.NoError(t, err)
	assert.Nil(t, got.SpotsLeft)

	stored, err := events.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	require.NotNil(t, stored.CurrentAttendees)
	assert.Equal(t, 1, *stored.CurrentAttendees)
}

func TestRegistrationRegisterHiddenEvent(t *testing.T) {
	pending := capacityEvent("e1", 30, 0)
	pending.ApprovalStatus = models.ApprovalPending
	svc, _ := newRegistrationFixture(t, pending)

	_, err := svc.Register(context.Background(), "e1", validRegistration())
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)

	_, err = svc.Register(context.Background(), "missing", validRegistration())
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestRegistrationRegisterInvalidForm(t *testing.T) {
	svc, _ := newRegistrationFixture(t, capacityEvent("e1", 30, 0))

	req := validRegistration()
	req.Edad = 15
	req.Email = "no-es-email"
	req.Telefono = "123"

	_, err := svc.Register(context.Background(), "e1", req)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "edad")
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "telefono")
	assert.Equal(t, "Debe ser mayor o igual a 16", appErr.Fields["edad"])

	req = validRegistration()
	req.Edad = 101
	_, err = svc.Register(context.Background(), "e1", req)
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "edad")
}
