package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop()), srv
}

func withCache(t *testing.T, c *Client) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	c.UseRedisCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 30*time.Second)
	return mr
}

func TestClientAttachesBearerAndContentType(t *testing.T) {
	var gotAuth, gotContentType string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{}})
	}))

	_, err := client.CreateInquiry(context.Background(), "tok-123", InquiryPayload{
		Subject: "s", Message: "m", Category: "c",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestListBookingsDecodesAllBookingsKey(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"allBookings": []map[string]any{
				{"id": "b1", "status": "Pending"},
			},
		})
	}))

	bookings, err := client.ListBookings(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b1", bookings[0].ID)
}

func TestListPickupsDecodesAllPickupsKey(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"allPickups": []map[string]any{
				{"id": "p1", "status": "Canceled"},
			},
		})
	}))

	pickups, err := client.ListPickups(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, pickups, 1)
	assert.Equal(t, "Canceled", pickups[0].Status)
}

func TestBusinessRejectionSurfacesMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "slot already taken",
		})
	}))

	_, err := client.ListBookings(context.Background(), "tok")
	require.Error(t, err)
	msg, ok := IsRejection(err)
	require.True(t, ok)
	assert.Equal(t, "slot already taken", msg)
}

func TestUnauthorizedStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.ListNotifications(context.Background(), "expired")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestNonTwoHundredBecomesAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "boom"})
	}))

	_, err := client.ListBookings(context.Background(), "tok")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestGetServedFromCacheWithinTTL(t *testing.T) {
	var hits int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"allBookings": []map[string]any{{"id": "b1"}},
		})
	}))
	withCache(t, client)

	for i := 0; i < 3; i++ {
		bookings, err := client.ListBookings(context.Background(), "tok")
		require.NoError(t, err)
		require.Len(t, bookings, 1)
	}
	// Rapid repeat fetches collapse onto one upstream request.
	assert.Equal(t, int64(1), atomic.LoadInt64(&hits))
}

func TestCacheIsScopedPerCaller(t *testing.T) {
	var hits int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "allBookings": []map[string]any{}})
	}))
	withCache(t, client)

	_, err := client.ListBookings(context.Background(), "alice")
	require.NoError(t, err)
	_, err = client.ListBookings(context.Background(), "bob")
	require.NoError(t, err)

	assert.Equal(t, int64(2), atomic.LoadInt64(&hits))
}

func TestMutationInvalidatesCallerCache(t *testing.T) {
	var listHits int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			atomic.AddInt64(&listHits, 1)
			json.NewEncoder(w).Encode(map[string]any{"success": true, "allBookings": []map[string]any{}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"id": "b9"}})
	}))
	withCache(t, client)

	_, err := client.ListBookings(context.Background(), "tok")
	require.NoError(t, err)
	_, err = client.CreateBooking(context.Background(), "tok", BookingPayload{ServiceName: "Home Cleaning"})
	require.NoError(t, err)
	_, err = client.ListBookings(context.Background(), "tok")
	require.NoError(t, err)

	// The list after the mutation must not be the stale cached one.
	assert.Equal(t, int64(2), atomic.LoadInt64(&listHits))
}

func TestTransportErrorWrapped(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond, zap.NewNop())

	_, err := client.ListBookings(context.Background(), "tok")
	require.Error(t, err)
	_, isRejection := IsRejection(err)
	assert.False(t, isRejection)
}
