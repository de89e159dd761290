package dto

import "github.com/usm-portal/event-portal-api/internal/models"

// NotificationFeed partitions the ledger into unread and read entries. The
// partition is computed on read, never maintained incrementally.
type NotificationFeed struct {
	Unread []models.Notification `json:"unread"`
	Read   []models.Notification `json:"read"`
}
