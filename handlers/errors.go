package handlers

import (
	"errors"
	"net/http"

	"ecoclean/backend"
	bookingSvc "ecoclean/services/booking"
	"ecoclean/services/forms"
	pickupSvc "ecoclean/services/pickup"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError funnels every failure class into the same toast-shaped
// JSON body the browser renders: validation, business rejection,
// unauthorized, backend status errors and transport failures.
func respondError(c *gin.Context, err error) {
	logger := getLogger(c)

	switch {
	case forms.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "message": err.Error()})
	case errors.Is(err, backend.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Please sign in again."})
	case errors.Is(err, bookingSvc.ErrNotEditable), errors.Is(err, pickupSvc.ErrNotEditable):
		c.JSON(http.StatusConflict, gin.H{"error": "not editable", "message": err.Error()})
	case errors.Is(err, bookingSvc.ErrNotFound), errors.Is(err, pickupSvc.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "message": err.Error()})
	default:
		if msg, ok := backend.IsRejection(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "request rejected", "message": msg})
			return
		}
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			logger.Warn("backend error", zap.Int("status", apiErr.StatusCode), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "backend error", "message": apiErr.Message})
			return
		}
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "request failed", "message": "Something went wrong. Please try again."})
	}
}
