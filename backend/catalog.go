package backend

import (
	"context"

	"ecoclean/models"
)

// ListServices returns the service catalog. Public endpoint: the token is
// attached when present but not required. Payload key is "data".
func (c *Client) ListServices(ctx context.Context, token string) ([]models.CatalogService, error) {
	var wrap struct {
		envelope
		Data []models.CatalogService `json:"data"`
	}
	if err := c.get(ctx, token, "/api/services", &wrap); err != nil {
		return nil, err
	}
	return wrap.Data, nil
}
