package repository

import (
	"strings"
	"time"

	"github.com/usm-portal/event-portal-api/internal/models"
)

const dateLayout = "2006-01-02"

// eventMatches evaluates the composite filter against a single event. All
// dimensions combine with logical AND; inactive dimensions pass.
func eventMatches(e models.Event, f models.EventFilter, now time.Time) bool {
	if f.Audience != "" && e.Audience != f.Audience {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	switch f.Cost {
	case models.CostFree:
		if e.Cost != 0 {
			return false
		}
	case models.CostPaid:
		if e.Cost == 0 {
			return false
		}
	}
	if !matchesDate(e.Date, f.Date, now) {
		return false
	}
	if query := strings.ToLower(strings.TrimSpace(f.Search)); query != "" {
		if !strings.Contains(searchText(e), query) {
			return false
		}
	}
	return true
}

// matchesDate buckets the event date against the current moment. Weeks are
// ISO-8601 (Monday start). An unparseable date fails any active bucket.
func matchesDate(raw string, f models.DateFilter, now time.Time) bool {
	switch f {
	case models.DateThisWeek, models.DateThisMonth, models.DateNextMonth:
	default:
		return true
	}

	date, err := time.ParseInLocation(dateLayout, raw, now.Location())
	if err != nil {
		return false
	}

	switch f {
	case models.DateThisWeek:
		nowYear, nowWeek := now.ISOWeek()
		year, week := date.ISOWeek()
		return year == nowYear && week == nowWeek
	case models.DateThisMonth:
		return date.Year() == now.Year() && date.Month() == now.Month()
	case models.DateNextMonth:
		// Anchor on the first of the month so adding a month never skips one.
		next := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
		return date.Year() == next.Year() && date.Month() == next.Month()
	}
	return true
}

func searchText(e models.Event) string {
	parts := []string{e.Title, e.Description, e.ShortDescription, e.Organizer, e.Location}
	parts = append(parts, e.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}
