package history

import (
	"strings"
	"time"

	"ecoclean/models"
)

// Date layouts observed across backend endpoints. Not consistent, so each
// is tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate tries the known layouts; ok is false when none match.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatDate renders a parsed date for display; unparsable input falls
// back to the raw string unmodified.
func formatDate(raw string) (string, time.Time) {
	if t, ok := parseDate(raw); ok {
		return t.Format("Jan 2, 2006"), t
	}
	return raw, time.Time{}
}

// formatTime prefers an explicit time field when present and not the
// literal "N/A"; otherwise it derives a time-of-day from the date field.
func formatTime(explicit, rawDate string) string {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" && explicit != "N/A" {
		return explicit
	}
	if t, ok := parseDate(rawDate); ok && !t.Equal(t.Truncate(24*time.Hour)) {
		return t.Format("3:04 PM")
	}
	return "N/A"
}

// NormalizeBooking maps a service booking into the unified history shape.
// Total: never errors, never panics on missing or malformed fields.
func NormalizeBooking(b models.ServiceBooking) models.HistoryItem {
	date, parsed := formatDate(b.Date)
	item := models.HistoryItem{
		ID:      b.ID,
		Kind:    models.KindServiceBooking,
		Date:    date,
		Time:    formatTime(b.Time, b.Date),
		Status:  strings.ToLower(b.Status),
		Address: b.Location,
	}
	item.SetParsedDate(parsed)
	return item
}

// NormalizePickup maps a pickup request into the unified history shape.
// Lowercasing the status flattens the Cancelled/Canceled spelling split
// between the two source schemas.
func NormalizePickup(p models.PickupRequest) models.HistoryItem {
	date, parsed := formatDate(p.Date)
	item := models.HistoryItem{
		ID:      p.ID,
		Kind:    models.KindPickupRequest,
		Date:    date,
		Time:    formatTime(p.Time, p.Date),
		Status:  strings.ToLower(p.Status),
		Address: p.Address,
	}
	item.SetParsedDate(parsed)
	return item
}
