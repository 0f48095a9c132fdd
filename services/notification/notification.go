package notification

import (
	"context"
	"sort"
	"strings"

	"ecoclean/models"
)

// NotificationAPI is the slice of the backend client the panel needs.
type NotificationAPI interface {
	ListNotifications(ctx context.Context, token string) ([]models.Notification, error)
}

// Panel is the notification-panel view model.
type Panel struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// NotificationService builds the notification panel. The read flag is
// display-only; no mark-as-read mutation exists on the backend contract.
type NotificationService struct {
	Backend NotificationAPI
}

// Panel fetches, sorts newest first and derives the unread count. A
// manual refresh is the same call again.
func (s *NotificationService) Panel(ctx context.Context, token string) (*Panel, error) {
	notifications, err := s.Backend.ListNotifications(ctx, token)
	if err != nil {
		return nil, err
	}
	SortByRecency(notifications)

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	return &Panel{Notifications: notifications, UnreadCount: unread}, nil
}

// SortByRecency orders notifications newest first using the multi-field
// timestamp fallback, since the backend's notification shape is not fully
// consistent across endpoints.
func SortByRecency(notifications []models.Notification) {
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp().After(notifications[j].Timestamp())
	})
}

// FilterByType narrows the panel to one notification type. An empty or
// "all" filter returns the input unchanged.
func FilterByType(notifications []models.Notification, typ string) []models.Notification {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if typ == "" || typ == "all" {
		return notifications
	}
	out := make([]models.Notification, 0, len(notifications))
	for _, n := range notifications {
		if strings.ToLower(n.Type) == typ {
			out = append(out, n)
		}
	}
	return out
}
