package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"ecoclean/middleware"
	pickupSvc "ecoclean/services/pickup"

	"github.com/gin-gonic/gin"
)

// PickupHandler serves the pickup-request form flow, including the image
// attachment upload.
type PickupHandler struct {
	Svc *pickupSvc.PickupService
}

// NewPickupHandler creates a new PickupHandler instance.
func NewPickupHandler(svc *pickupSvc.PickupService) *PickupHandler {
	return &PickupHandler{Svc: svc}
}

// Create handles POST /api/pickups (multipart/form-data). On success the
// user stays on the page and receives the refreshed list.
func (h *PickupHandler) Create(c *gin.Context) {
	form := pickupSvc.PickupForm{
		Name:    c.PostForm("fullName"),
		Contact: c.PostForm("contact"),
		Address: c.PostForm("address"),
		Date:    c.PostForm("date"),
		Time:    c.PostForm("time"),
	}
	// Attachment is validated by the service; absent file stays nil here.
	if header, err := c.FormFile("image"); err == nil {
		form.Image = header
	}

	var tempFilePath string
	if form.Image != nil {
		tempFilePath = filepath.Join(os.TempDir(), form.Image.Filename)
		if err := c.SaveUploadedFile(form.Image, tempFilePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "message": err.Error()})
			return
		}
		defer os.Remove(tempFilePath)
	}

	pickups, err := h.Svc.Create(c.Request.Context(), middleware.SessionToken(c), form, tempFilePath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Pickup request submitted successfully",
		"pickups": pickups,
	})
}

// List handles GET /api/pickups.
func (h *PickupHandler) List(c *gin.Context) {
	pickups, err := h.Svc.List(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pickups": pickups})
}

// Update handles PATCH /api/pickups/:id for Pending records.
func (h *PickupHandler) Update(c *gin.Context) {
	var draft pickupSvc.EditForm
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}
	if err := h.Svc.Update(c.Request.Context(), middleware.SessionToken(c), c.Param("id"), draft); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pickup request updated"})
}

// Delete handles DELETE /api/pickups/:id for Pending records.
func (h *PickupHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.SessionToken(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pickup request deleted"})
}
