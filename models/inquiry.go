package models

import "time"

// Inquiry statuses as spelled by the core backend.
const (
	InquiryOpen       = "Open"
	InquiryInProgress = "In Progress"
	InquiryResolved   = "Resolved"
	InquiryClosed     = "Closed"
)

// Inquiry is a customer support inquiry.
type Inquiry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Response  string    `json:"response,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
