package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ecoclean/models"
)

// BookingPayload is the booking-creation request body. Shape matches the
// booking endpoint specifically; pickups build a different payload.
type BookingPayload struct {
	ServiceName string  `json:"serviceName"`
	UserName    string  `json:"name"`
	Contact     string  `json:"contact"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Advance     float64 `json:"advance,omitempty"`
}

// BookingUpdate carries the fields a customer may edit while Pending.
type BookingUpdate struct {
	Contact  string `json:"contact,omitempty"`
	Location string `json:"location,omitempty"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
}

// ListBookings returns the caller's service bookings.
// This endpoint wraps its payload under "allBookings".
func (c *Client) ListBookings(ctx context.Context, token string) ([]models.ServiceBooking, error) {
	var wrap struct {
		envelope
		AllBookings []models.ServiceBooking `json:"allBookings"`
	}
	if err := c.get(ctx, token, "/api/bookings", &wrap); err != nil {
		return nil, err
	}
	return wrap.AllBookings, nil
}

// CreateBooking submits a new booking and returns the created record.
func (c *Client) CreateBooking(ctx context.Context, token string, payload BookingPayload) (*models.ServiceBooking, error) {
	raw, err := c.do(ctx, token, http.MethodPost, "/api/bookings", payload)
	if err != nil {
		return nil, err
	}
	var wrap struct {
		envelope
		Data models.ServiceBooking `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrap); err != nil {
		return nil, fmt.Errorf("backend: decode booking: %w", err)
	}
	c.InvalidateUserCache(ctx, token)
	return &wrap.Data, nil
}

// UpdateBooking edits a Pending booking in place.
func (c *Client) UpdateBooking(ctx context.Context, token, id string, update BookingUpdate) error {
	_, err := c.do(ctx, token, http.MethodPut, "/api/bookings/"+id, update)
	if err != nil {
		return err
	}
	c.InvalidateUserCache(ctx, token)
	return nil
}

// DeleteBooking removes a booking; the backend only allows this while the
// record is still Pending.
func (c *Client) DeleteBooking(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, token, http.MethodDelete, "/api/bookings/"+id, nil)
	if err != nil {
		return err
	}
	c.InvalidateUserCache(ctx, token)
	return nil
}

// PurchaseQuote asks the backend what is still owed on a booking. The
// generic purchase endpoint wraps its payload under "data".
func (c *Client) PurchaseQuote(ctx context.Context, token, bookingID string) (*models.PurchaseQuote, error) {
	raw, err := c.do(ctx, token, http.MethodPost, "/api/purchase", map[string]string{"bookingId": bookingID})
	if err != nil {
		return nil, err
	}
	var wrap struct {
		envelope
		Data models.PurchaseQuote `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrap); err != nil {
		return nil, fmt.Errorf("backend: decode purchase quote: %w", err)
	}
	return &wrap.Data, nil
}
