package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usm-portal/event-portal-api/internal/models"
)

func seedLedger() *NotificationRepository {
	ts := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	return NewNotificationRepository([]models.Notification{
		{ID: "n1", Type: models.NotificationInfo, Title: "uno", Timestamp: ts},
		{ID: "n2", Type: models.NotificationSuccess, Title: "dos", Timestamp: ts.Add(-time.Hour), Read: true},
	})
}

func TestNotificationRepositoryAddPrepends(t *testing.T) {
	repo := seedLedger()

	err := repo.Add(context.Background(), models.Notification{Title: "nuevo"})
	require.NoError(t, err)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "nuevo", entries[0].Title)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.Equal(t, "n1", entries[1].ID)
}

func TestNotificationRepositoryMarkRead(t *testing.T) {
	repo := seedLedger()

	require.NoError(t, repo.MarkRead(context.Background(), "n1"))
	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.True(t, entries[0].Read)

	// Idempotent, and absent ids are silent no-ops.
	require.NoError(t, repo.MarkRead(context.Background(), "n1"))
	require.NoError(t, repo.MarkRead(context.Background(), "missing"))

	entries, err = repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestNotificationRepositoryMarkAllRead(t *testing.T) {
	repo := seedLedger()

	require.NoError(t, repo.MarkAllRead(context.Background()))
	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	for _, n := range entries {
		assert.True(t, n.Read)
	}
}

func TestNotificationRepositoryDelete(t *testing.T) {
	repo := seedLedger()

	require.NoError(t, repo.Delete(context.Background(), "n2"))
	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "n1", entries[0].ID)

	// Absent id is a silent no-op.
	require.NoError(t, repo.Delete(context.Background(), "n2"))
	entries, err = repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
