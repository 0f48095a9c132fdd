// File: ecoclean/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Guest shell endpoints.
	ListServicesHandler  gin.HandlerFunc
	SubmitInquiryHandler gin.HandlerFunc

	// Customer shell: history/status views.
	HistoryHandler   gin.HandlerFunc
	TrackHandler     gin.HandlerFunc
	DashboardHandler gin.HandlerFunc
	RewardsHandler   gin.HandlerFunc

	// Booking form flow.
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	UpdateBookingHandler gin.HandlerFunc
	DeleteBookingHandler gin.HandlerFunc
	PurchaseHandler      gin.HandlerFunc

	// Pickup-request form flow.
	CreatePickupHandler gin.HandlerFunc
	ListPickupsHandler  gin.HandlerFunc
	UpdatePickupHandler gin.HandlerFunc
	DeletePickupHandler gin.HandlerFunc

	// Inquiries and notifications.
	ListInquiriesHandler gin.HandlerFunc
	NotificationsHandler gin.HandlerFunc
}
