package models

import "time"

// Notification types used by the panel filter.
const (
	NotificationPickup  = "pickup"
	NotificationService = "service"
	NotificationReward  = "reward"
	NotificationAlert   = "alert"
	NotificationInfo    = "info"
)

// Notification as returned by the core backend. The timestamp fields are
// not consistently populated across endpoints; recency sorting falls back
// across CreatedAt, UpdatedAt and Date in that order.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
	Date      time.Time `json:"date,omitempty"`
}

// Timestamp returns the best available recency timestamp.
func (n Notification) Timestamp() time.Time {
	switch {
	case !n.CreatedAt.IsZero():
		return n.CreatedAt
	case !n.UpdatedAt.IsZero():
		return n.UpdatedAt
	default:
		return n.Date
	}
}
