package models

import "time"

// Service booking lifecycle statuses as the core backend spells them.
const (
	StatusPending    = "Pending"
	StatusConfirmed  = "Confirmed"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	// Bookings use the double-L spelling, pickup requests the single-L one.
	// Both spellings exist on the wire; treat them as one state.
	StatusCancelled = "Cancelled"
	StatusCanceled  = "Canceled"
)

// ServiceBooking is a booking record as returned by the core backend.
// The gateway never mutates these; it only renders and forwards them.
type ServiceBooking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	ServiceName string    `json:"serviceName"`
	Contact     string    `json:"contact"`
	Location    string    `json:"location"`
	Date        string    `json:"date"` // ISO date, format not guaranteed consistent
	Time        string    `json:"time,omitempty"`
	Advance     float64   `json:"advance"`
	Price       float64   `json:"price"`
	Balance     float64   `json:"balance"`
	Staff       []string  `json:"staff,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsCancelled reports whether a status denotes the cancelled state,
// accepting both backend spellings.
func IsCancelled(status string) bool {
	return status == StatusCancelled || status == StatusCanceled
}

// IsEditable reports whether a record in this status may still be
// updated or deleted by the customer.
func IsEditable(status string) bool {
	return status == StatusPending
}
