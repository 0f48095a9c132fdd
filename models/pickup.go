package models

import "time"

// PickupRequest is a waste-pickup request record as returned by the core
// backend. Shape intentionally mirrors the wire contract, not ServiceBooking:
// the two endpoints are not uniform (address vs location, Canceled vs Cancelled).
type PickupRequest struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	Date      string    `json:"date"`
	Time      string    `json:"time,omitempty"` // backend sometimes sends the literal "N/A"
	ImageURL  string    `json:"imageUrl,omitempty"`
	Advance   float64   `json:"advance"`
	Price     float64   `json:"price"`
	Balance   float64   `json:"balance"`
	Staff     []string  `json:"staff,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
