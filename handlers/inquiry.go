package handlers

import (
	"net/http"

	"ecoclean/middleware"
	inquirySvc "ecoclean/services/inquiry"

	"github.com/gin-gonic/gin"
)

// InquiryHandler serves the contact/inquiry form.
type InquiryHandler struct {
	Svc *inquirySvc.InquiryService
}

// NewInquiryHandler creates a new InquiryHandler instance.
func NewInquiryHandler(svc *inquirySvc.InquiryService) *InquiryHandler {
	return &InquiryHandler{Svc: svc}
}

// Submit handles POST /api/inquiries. Reachable from the guest shell too,
// so the token may be empty.
func (h *InquiryHandler) Submit(c *gin.Context) {
	var form inquirySvc.InquiryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}
	created, err := h.Svc.Submit(c.Request.Context(), middleware.SessionToken(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Inquiry submitted successfully",
		"inquiry": created,
	})
}

// List handles GET /api/inquiries for the signed-in customer.
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.Svc.List(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}
