package backend

import (
	"context"

	"ecoclean/models"
)

// ListNotifications returns all notifications for the signed-in user.
// Payload key is "data" on this endpoint.
func (c *Client) ListNotifications(ctx context.Context, token string) ([]models.Notification, error) {
	var wrap struct {
		envelope
		Data []models.Notification `json:"data"`
	}
	if err := c.get(ctx, token, "/api/notifications", &wrap); err != nil {
		return nil, err
	}
	return wrap.Data, nil
}
