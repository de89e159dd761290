package dto

import (
	"strings"

	"github.com/usm-portal/event-portal-api/internal/models"
)

// EventQuery mirrors the listing query parameters.
type EventQuery struct {
	Audience string
	Category string
	Cost     string
	Date     string
	Search   string
}

// Filter converts the raw query into an EventFilter. Unknown or "all"
// selectors leave their dimension inactive.
func (q EventQuery) Filter() models.EventFilter {
	filter := models.EventFilter{Search: strings.TrimSpace(q.Search)}
	if q.Audience != "" && q.Audience != "all" {
		filter.Audience = models.EventAudience(q.Audience)
	}
	if q.Category != "" && q.Category != "all" {
		filter.Category = models.EventCategory(q.Category)
	}
	switch models.CostFilter(q.Cost) {
	case models.CostFree, models.CostPaid:
		filter.Cost = models.CostFilter(q.Cost)
	}
	switch models.DateFilter(q.Date) {
	case models.DateThisWeek, models.DateThisMonth, models.DateNextMonth:
		filter.Date = models.DateFilter(q.Date)
	}
	return filter
}

// RegistrationConfirmation is returned after a successful signup.
type RegistrationConfirmation struct {
	Registration *models.Registration `json:"registration"`
	EventTitle   string               `json:"eventTitle"`
	SpotsLeft    *int                 `json:"spotsLeft,omitempty"`
}
