package models

import "time"

// History item kinds (display labels).
const (
	KindServiceBooking = "Service Booking"
	KindPickupRequest  = "Pickup Request"
)

// HistoryItem is the unified display record derived from either a
// ServiceBooking or a PickupRequest. It carries no back-reference to the
// source record beyond the ID.
type HistoryItem struct {
	ID      string `json:"id"`
	Kind    string `json:"type"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"` // lowercased for uniform comparison
	Address string `json:"address"`

	// parsedDate is the parse result for Date, zero when unparsable.
	// Unexported: sorting detail, not part of the display shape.
	parsedDate time.Time
}

// SetParsedDate records the parse result for the item's date field.
func (h *HistoryItem) SetParsedDate(t time.Time) { h.parsedDate = t }

// ParsedDate returns the parsed date and whether parsing succeeded.
func (h *HistoryItem) ParsedDate() (time.Time, bool) {
	return h.parsedDate, !h.parsedDate.IsZero()
}
