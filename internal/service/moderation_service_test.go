package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/usm-portal/event-portal-api/internal/dto"
	"github.com/usm-portal/event-portal-api/internal/models"
	"github.com/usm-portal/event-portal-api/internal/repository"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
)

var reviewNow = time.Date(2026, time.March, 11, 15, 30, 0, 0, time.UTC)

func pendingEvent(id string) models.Event {
	return models.Event{
		ID:             id,
		Title:          "Feria de Proyectos",
		Date:           "2026-04-10",
		Audience:       models.AudienceOpen,
		Category:       models.CategoryTecnologia,
		ApprovalStatus: models.ApprovalPending,
	}
}

type moderationFixture struct {
	svc    *ModerationService
	events *repository.EventRepository
	ledger *repository.NotificationRepository
}

func newModerationFixture(t *testing.T, seed ...models.Event) *moderationFixture {
	t.Helper()
	events := repository.NewEventRepository(seed)
	ledger := repository.NewNotificationRepository(nil)
	notifications := NewNotificationService(ledger, zap.NewNop())
	svc := NewModerationService(events, notifications, nil, zap.NewNop(),
		WithModerationClock(func() time.Time { return reviewNow }))
	return &moderationFixture{svc: svc, events: events, ledger: ledger}
}

func TestModerationReviewApprove(t *testing.T) {
	fx := newModerationFixture(t, pendingEvent("e1"))

	got, err := fx.svc.Review(context.Background(), "e1", dto.ReviewEventRequest{Action: dto.ActionApprove}, "admin@usm.cl")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, got.ApprovalStatus)
	assert.Equal(t, "admin@usm.cl", got.ApprovedBy)
	require.NotNil(t, got.ApprovedAt)
	assert.Equal(t, reviewNow, *got.ApprovedAt)
	assert.Equal(t, reviewNow, got.LastUpdated)

	stored, err := fx.events.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, stored.ApprovalStatus)

	entries, err := fx.ledger.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.NotificationSuccess, entries[0].Type)
	assert.Equal(t, "e1", entries[0].EventID)
}

func TestModerationReviewRejectRequiresReason(t *testing.T) {
	fx := newModerationFixture(t, pendingEvent("e1"))

	_, err := fx.svc.Review(context.Background(), "e1", dto.ReviewEventRequest{
		Action:          dto.ActionReject,
		RejectionReason: "   ",
	}, "admin")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Fields, "rejectionReason")

	// The event stays pending and no notification is written.
	stored, err := fx.events.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, stored.ApprovalStatus)
	assert.Empty(t, stored.RejectionReason)

	entries, err := fx.ledger.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestModerationReviewReject(t *testing.T) {
	fx := newModerationFixture(t, pendingEvent("e1"))

	got, err := fx.svc.Review(context.Background(), "e1", dto.ReviewEventRequest{
		Action:          dto.ActionReject,
		RejectionReason: "  Falta información del organizador  ",
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalRejected, got.ApprovalStatus)
	assert.Equal(t, "Falta información del organizador", got.RejectionReason)

	entries, err := fx.ledger.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.NotificationError, entries[0].Type)
}

func TestModerationReviewRequestChanges(t *testing.T) {
	fx := newModerationFixture(t, pendingEvent("e1"))

	_, err := fx.svc.Review(context.Background(), "e1", dto.ReviewEventRequest{
		Action: dto.ActionRequestChanges,
	}, "admin")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "adminNotes")

	got, err := fx.svc.Review(context.Background(), "e1", dto.ReviewEventRequest{
		Action:     dto.ActionRequestChanges,
		AdminNotes: "Acota la descripción y confirma el lugar",
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalNeedsChanges, got.ApprovalStatus)
	assert.Equal(t, "Acota la descripción y confirma el lugar", got.AdminNotes)

	entries, err := fx.ledger.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.NotificationWarning, entries[0].Type)
}

func TestModerationReviewAlreadyReviewed(t *testing.T) {
	approved := pendingEvent("e1")
	approved.ApprovalStatus = models.ApprovalApproved
	fx := newModerationFixture(t, approved)

	_, err := fx.svc.Review(context.Background(), "e1", dto.ReviewEventRequest{Action: dto.ActionApprove}, "admin")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestModerationReviewNotFound(t *testing.T) {
	fx := newModerationFixture(t)

	_, err := fx.svc.Review(context.Background(), "missing", dto.ReviewEventRequest{Action: dto.ActionApprove}, "admin")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestModerationReviewUnknownAction(t *testing.T) {
	fx := newModerationFixture(t, pendingEvent("e1"))

	_, err := fx.svc.Review(context.Background(), "e1", dto.ReviewEventRequest{Action: "publish"}, "admin")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestModerationListByStatus(t *testing.T) {
	rejected := pendingEvent("e2")
	rejected.ApprovalStatus = models.ApprovalRejected
	fx := newModerationFixture(t, pendingEvent("e1"), rejected)

	got, err := fx.svc.ListByStatus(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)

	got, err = fx.svc.ListByStatus(context.Background(), "rejected")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e2", got[0].ID)

	_, err = fx.svc.ListByStatus(context.Background(), "archived")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
