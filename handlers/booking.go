package handlers

import (
	"net/http"

	"ecoclean/middleware"
	bookingSvc "ecoclean/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the standalone booking form flow and the
// purchase/checkout action.
type BookingHandler struct {
	Svc      *bookingSvc.BookingService
	Payments *bookingSvc.PaymentHandler
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc *bookingSvc.BookingService, payments *bookingSvc.PaymentHandler) *BookingHandler {
	return &BookingHandler{Svc: svc, Payments: payments}
}

// Create handles POST /api/bookings. On success the browser resets the
// form, shows the toast and auto-navigates to the bookings page.
func (h *BookingHandler) Create(c *gin.Context) {
	var form bookingSvc.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}
	created, err := h.Svc.Create(c.Request.Context(), middleware.SessionToken(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Booking submitted successfully",
		"booking":  created,
		"navigate": "/bookings",
	})
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.Svc.List(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Update handles PUT /api/bookings/:id, saving an edit-draft for a record
// that is still Pending.
func (h *BookingHandler) Update(c *gin.Context) {
	var draft bookingSvc.EditForm
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}
	if err := h.Svc.Update(c.Request.Context(), middleware.SessionToken(c), c.Param("id"), draft); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}

// Delete handles DELETE /api/bookings/:id for Pending records.
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.SessionToken(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// Purchase handles POST /api/bookings/:id/purchase. The response carries
// either a hosted-checkout redirect URL or a synchronous paid flag.
func (h *BookingHandler) Purchase(c *gin.Context) {
	result, err := h.Payments.Purchase(c.Request.Context(), middleware.SessionToken(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
