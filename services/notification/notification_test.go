package notification

import (
	"context"
	"testing"
	"time"

	"ecoclean/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationAPI struct {
	notifications []models.Notification
	err           error
}

func (s *stubNotificationAPI) ListNotifications(ctx context.Context, token string) ([]models.Notification, error) {
	return s.notifications, s.err
}

func at(day int) time.Time {
	return time.Date(2024, 7, day, 10, 0, 0, 0, time.UTC)
}

func TestPanelSortsNewestFirstWithFieldFallback(t *testing.T) {
	svc := &NotificationService{Backend: &stubNotificationAPI{notifications: []models.Notification{
		{ID: "created", CreatedAt: at(5)},
		{ID: "date-only", Date: at(10)},
		{ID: "updated-only", UpdatedAt: at(7)},
	}}}

	panel, err := svc.Panel(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, panel.Notifications, 3)
	assert.Equal(t, "date-only", panel.Notifications[0].ID)
	assert.Equal(t, "updated-only", panel.Notifications[1].ID)
	assert.Equal(t, "created", panel.Notifications[2].ID)
}

func TestPanelUnreadCount(t *testing.T) {
	svc := &NotificationService{Backend: &stubNotificationAPI{notifications: []models.Notification{
		{ID: "a", Read: true},
		{ID: "b"},
		{ID: "c"},
	}}}

	panel, err := svc.Panel(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 2, panel.UnreadCount)
}

func TestTimestampPrefersCreatedAt(t *testing.T) {
	n := models.Notification{CreatedAt: at(1), UpdatedAt: at(2), Date: at(3)}
	assert.Equal(t, at(1), n.Timestamp())

	n = models.Notification{UpdatedAt: at(2), Date: at(3)}
	assert.Equal(t, at(2), n.Timestamp())

	n = models.Notification{Date: at(3)}
	assert.Equal(t, at(3), n.Timestamp())
}

func TestFilterByType(t *testing.T) {
	notifications := []models.Notification{
		{ID: "a", Type: models.NotificationPickup},
		{ID: "b", Type: models.NotificationReward},
		{ID: "c", Type: models.NotificationPickup},
	}

	got := FilterByType(notifications, "Pickup")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)

	assert.Len(t, FilterByType(notifications, ""), 3)
	assert.Len(t, FilterByType(notifications, "all"), 3)
	assert.Empty(t, FilterByType(notifications, "alert"))
}
