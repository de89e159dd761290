package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/usm-portal/event-portal-api/internal/models"
	"github.com/usm-portal/event-portal-api/internal/repository"
)

func newNotificationFixture(t *testing.T) (*NotificationService, *repository.NotificationRepository) {
	t.Helper()
	ts := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	ledger := repository.NewNotificationRepository([]models.Notification{
		{ID: "n1", Type: models.NotificationInfo, Title: "uno", Timestamp: ts},
		{ID: "n2", Type: models.NotificationSuccess, Title: "dos", Timestamp: ts.Add(-time.Hour), Read: true},
		{ID: "n3", Type: models.NotificationWarning, Title: "tres", Timestamp: ts.Add(-2 * time.Hour)},
	})
	return NewNotificationService(ledger, zap.NewNop()), ledger
}

func TestNotificationFeedPartition(t *testing.T) {
	svc, _ := newNotificationFixture(t)

	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed.Unread, 2)
	require.Len(t, feed.Read, 1)
	assert.Equal(t, "n1", feed.Unread[0].ID)
	assert.Equal(t, "n3", feed.Unread[1].ID)
	assert.Equal(t, "n2", feed.Read[0].ID)
}

func TestNotificationFeedReflectsMutations(t *testing.T) {
	svc, _ := newNotificationFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.MarkRead(ctx, "n1"))
	require.NoError(t, svc.MarkRead(ctx, "missing"))

	feed, err := svc.Feed(ctx)
	require.NoError(t, err)
	assert.Len(t, feed.Unread, 1)
	assert.Len(t, feed.Read, 2)

	require.NoError(t, svc.MarkAllRead(ctx))
	feed, err = svc.Feed(ctx)
	require.NoError(t, err)
	assert.Empty(t, feed.Unread)
	assert.Len(t, feed.Read, 3)

	require.NoError(t, svc.Delete(ctx, "n2"))
	require.NoError(t, svc.Delete(ctx, "n2"))
	feed, err = svc.Feed(ctx)
	require.NoError(t, err)
	assert.Len(t, feed.Read, 2)
}

func TestNotificationPublishPrepends(t *testing.T) {
	svc, ledger := newNotificationFixture(t)

	err := svc.Publish(context.Background(), models.Notification{
		Type:    models.NotificationSuccess,
		Title:   "Evento aprobado",
		EventID: "e1",
	})
	require.NoError(t, err)

	entries, err := ledger.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "Evento aprobado", entries[0].Title)
}
