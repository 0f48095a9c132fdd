package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ecoclean/models"
)

// PickupPayload is the pickup-request creation body. The image is uploaded
// to object storage first; only its URL travels to the backend.
type PickupPayload struct {
	UserName string `json:"fullName"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// PickupUpdate carries the fields editable while a request is Pending.
type PickupUpdate struct {
	Contact string `json:"contact,omitempty"`
	Address string `json:"address,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
}

// ListPickups returns the caller's pickup requests.
// This endpoint wraps its payload under "allPickups".
func (c *Client) ListPickups(ctx context.Context, token string) ([]models.PickupRequest, error) {
	var wrap struct {
		envelope
		AllPickups []models.PickupRequest `json:"allPickups"`
	}
	if err := c.get(ctx, token, "/api/pickups", &wrap); err != nil {
		return nil, err
	}
	return wrap.AllPickups, nil
}

// CreatePickup submits a new pickup request and returns the created record.
func (c *Client) CreatePickup(ctx context.Context, token string, payload PickupPayload) (*models.PickupRequest, error) {
	raw, err := c.do(ctx, token, http.MethodPost, "/api/pickups", payload)
	if err != nil {
		return nil, err
	}
	var wrap struct {
		envelope
		Data models.PickupRequest `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrap); err != nil {
		return nil, fmt.Errorf("backend: decode pickup: %w", err)
	}
	c.InvalidateUserCache(ctx, token)
	return &wrap.Data, nil
}

// UpdatePickup edits a Pending pickup request in place.
func (c *Client) UpdatePickup(ctx context.Context, token, id string, update PickupUpdate) error {
	_, err := c.do(ctx, token, http.MethodPatch, "/api/pickups/"+id, update)
	if err != nil {
		return err
	}
	c.InvalidateUserCache(ctx, token)
	return nil
}

// DeletePickup removes a pickup request while it is still Pending.
func (c *Client) DeletePickup(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, token, http.MethodDelete, "/api/pickups/"+id, nil)
	if err != nil {
		return err
	}
	c.InvalidateUserCache(ctx, token)
	return nil
}
