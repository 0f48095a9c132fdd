package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ecoclean/models"
)

// InquiryPayload is the inquiry submission body.
type InquiryPayload struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// CreateInquiry submits a support inquiry.
func (c *Client) CreateInquiry(ctx context.Context, token string, payload InquiryPayload) (*models.Inquiry, error) {
	raw, err := c.do(ctx, token, http.MethodPost, "/api/inquiries", payload)
	if err != nil {
		return nil, err
	}
	var wrap struct {
		envelope
		Data models.Inquiry `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrap); err != nil {
		return nil, fmt.Errorf("backend: decode inquiry: %w", err)
	}
	c.InvalidateUserCache(ctx, token)
	return &wrap.Data, nil
}

// ListInquiries returns the caller's inquiries with any staff responses.
func (c *Client) ListInquiries(ctx context.Context, token string) ([]models.Inquiry, error) {
	var wrap struct {
		envelope
		Data []models.Inquiry `json:"data"`
	}
	if err := c.get(ctx, token, "/api/inquiries", &wrap); err != nil {
		return nil, err
	}
	return wrap.Data, nil
}
