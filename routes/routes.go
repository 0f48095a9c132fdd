package routes

import (
	"net/http"
	"time"

	"ecoclean/handlers"
	"ecoclean/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterGuestRoutes registers the endpoints reachable from the guest
// shell (marketing pages): service browsing and the contact form.
func RegisterGuestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.POST("/inquiries", hb.SubmitInquiryHandler)
	}
}

// RegisterCustomerRoutes registers the authentication-gated customer
// shell: dashboard, history, bookings, pickups, rewards, notifications.
// Gating here is UX convenience; the core backend re-authorizes every
// forwarded call.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.SessionAuth())
	{
		api.GET("/dashboard", hb.DashboardHandler)
		api.GET("/history", hb.HistoryHandler)
		api.GET("/history/:id", hb.TrackHandler)
		api.GET("/rewards", hb.RewardsHandler)

		api.POST("/bookings", hb.CreateBookingHandler)
		api.GET("/bookings", hb.ListBookingsHandler)
		api.PUT("/bookings/:id", hb.UpdateBookingHandler)
		api.DELETE("/bookings/:id", hb.DeleteBookingHandler)
		api.POST("/bookings/:id/purchase", hb.PurchaseHandler)

		api.POST("/pickups", hb.CreatePickupHandler)
		api.GET("/pickups", hb.ListPickupsHandler)
		api.PATCH("/pickups/:id", hb.UpdatePickupHandler)
		api.DELETE("/pickups/:id", hb.DeletePickupHandler)

		api.GET("/inquiries", hb.ListInquiriesHandler)
		api.GET("/notifications", hb.NotificationsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm EcoClean"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterGuestRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
}
