package handlers

import (
	"net/http"

	"ecoclean/middleware"
	notificationSvc "ecoclean/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the notification panel.
type NotificationHandler struct {
	Svc *notificationSvc.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler instance.
func NewNotificationHandler(svc *notificationSvc.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// Panel handles GET /api/notifications?type=. A manual refresh from the
// dropdown re-issues the same request.
func (h *NotificationHandler) Panel(c *gin.Context) {
	panel, err := h.Svc.Panel(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	panel.Notifications = notificationSvc.FilterByType(panel.Notifications, c.Query("type"))
	c.JSON(http.StatusOK, panel)
}
