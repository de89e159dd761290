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

func validChangeRequest() dto.ChangeRequestPayload {
	return dto.ChangeRequestPayload{
		RequesterName:  "Pedro Soto",
		RequesterEmail: "psoto@usm.cl",
		ChangeType:     "date",
		CurrentValue:   "2026-04-10",
		RequestedValue: "2026-04-17",
		Reason:         "El auditorio no está disponible esa semana",
	}
}

func publishedEvent() models.Event {
	capacity := 120
	return models.Event{
		ID:              "e1",
		Title:           "Charla de Ciberseguridad",
		Description:     "Panorama de amenazas y defensa en profundidad.",
		Date:            "2026-04-10",
		Time:            "18:00 - 20:00",
		Location:        "Auditorio Central",
		Audience:        models.AudienceUniversityOnly,
		Category:        models.CategoryConferencias,
		Cost:            5000,
		Capacity:        &capacity,
		RegistrationURL: "https://eventos.usm.cl/ciberseguridad",
		ApprovalStatus:  models.ApprovalApproved,
	}
}

type changeRequestFixture struct {
	svc      *ChangeRequestService
	requests *repository.ChangeRequestRepository
	ledger   *repository.NotificationRepository
}

func newChangeRequestFixture(t *testing.T, seed ...models.Event) *changeRequestFixture {
	t.Helper()
	events := repository.NewEventRepository(seed)
	requests := repository.NewChangeRequestRepository()
	ledger := repository.NewNotificationRepository(nil)
	notifications := NewNotificationService(ledger, zap.NewNop())
	svc := NewChangeRequestService(events, requests, notifications, NewValidator(), zap.NewNop())
	return &changeRequestFixture{svc: svc, requests: requests, ledger: ledger}
}

func TestChangeRequestSubmit(t *testing.T) {
	fx := newChangeRequestFixture(t, publishedEvent())

	got, err := fx.svc.Submit(context.Background(), "e1", validChangeRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "e1", got.EventID)
	assert.Equal(t, models.ChangeDate, got.ChangeType)
	assert.False(t, got.SubmittedAt.IsZero())

	stored, err := fx.requests.ListByEvent(context.Background(), "e1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	entries, err := fx.ledger.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.NotificationInfo, entries[0].Type)
}

func TestChangeRequestSubmitInvalidPayload(t *testing.T) {
	fx := newChangeRequestFixture(t, publishedEvent())

	req := validChangeRequest()
	req.ChangeType = "color"
	req.Reason = "corto"
	req.RequestedValue = ""

	_, err := fx.svc.Submit(context.Background(), "e1", req)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "changeType")
	assert.Contains(t, appErr.Fields, "reason")
	assert.Contains(t, appErr.Fields, "requestedValue")
	assert.Equal(t, "Debes seleccionar el tipo de cambio", appErr.Fields["changeType"])
}

func TestChangeRequestSubmitHiddenEvent(t *testing.T) {
	hidden := publishedEvent()
	hidden.ApprovalStatus = models.ApprovalNeedsChanges
	fx := newChangeRequestFixture(t, hidden)

	_, err := fx.svc.Submit(context.Background(), "e1", validChangeRequest())
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestChangeRequestCurrentValue(t *testing.T) {
	fx := newChangeRequestFixture(t, publishedEvent())
	ctx := context.Background()

	cases := []struct {
		changeType models.ChangeType
		want       string
	}{
		{models.ChangeTitle, "Charla de Ciberseguridad"},
		{models.ChangeDate, "2026-04-10"},
		{models.ChangeTime, "18:00 - 20:00"},
		{models.ChangeLocation, "Auditorio Central"},
		{models.ChangeCost, "5000"},
		{models.ChangeCapacity, "120"},
		{models.ChangeAudience, "Solo Universidad"},
		{models.ChangeRegistrationURL, "https://eventos.usm.cl/ciberseguridad"},
	}
	for _, tc := range cases {
		got, err := fx.svc.CurrentValue(ctx, "e1", tc.changeType)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, string(tc.changeType))
	}
}

func TestChangeRequestCurrentValueDepartmentAudience(t *testing.T) {
	event := publishedEvent()
	event.Audience = models.AudienceSpecificDepartment
	event.AudienceDetails = "Departamento de Informática"
	fx := newChangeRequestFixture(t, event)

	got, err := fx.svc.CurrentValue(context.Background(), "e1", models.ChangeAudience)
	require.NoError(t, err)
	assert.Equal(t, "Departamento de Informática", got)
}

func TestChangeRequestCurrentValueUnboundedCapacity(t *testing.T) {
	event := publishedEvent()
	event.Capacity = nil
	fx := newChangeRequestFixture(t, event)

	got, err := fx.svc.CurrentValue(context.Background(), "e1", models.ChangeCapacity)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = fx.svc.CurrentValue(context.Background(), "missing", models.ChangeTitle)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
