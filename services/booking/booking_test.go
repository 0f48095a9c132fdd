package booking

import (
	"context"
	"testing"
	"time"

	"ecoclean/backend"
	"ecoclean/models"
	"ecoclean/services/forms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockBookingAPI struct {
	mock.Mock
}

func (m *mockBookingAPI) ListBookings(ctx context.Context, token string) ([]models.ServiceBooking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceBooking), args.Error(1)
}

func (m *mockBookingAPI) CreateBooking(ctx context.Context, token string, payload backend.BookingPayload) (*models.ServiceBooking, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceBooking), args.Error(1)
}

func (m *mockBookingAPI) UpdateBooking(ctx context.Context, token, id string, update backend.BookingUpdate) error {
	return m.Called(ctx, token, id, update).Error(0)
}

func (m *mockBookingAPI) DeleteBooking(ctx context.Context, token, id string) error {
	return m.Called(ctx, token, id).Error(0)
}

var bookingNow = time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

func newBookingService(api *mockBookingAPI) *BookingService {
	return &BookingService{
		Backend: api,
		Logger:  zap.NewNop(),
		Now:     func() time.Time { return bookingNow },
	}
}

func validForm() BookingForm {
	return BookingForm{
		ServiceName: "Home Cleaning",
		Name:        "Ana",
		Contact:     "555-0100",
		Location:    "12 Green Lane",
		Date:        "2024-07-20",
		Time:        "09:00",
	}
}

func TestCreateSubmitsBookingPayload(t *testing.T) {
	api := new(mockBookingAPI)
	api.On("CreateBooking", mock.Anything, "tok", backend.BookingPayload{
		ServiceName: "Home Cleaning",
		UserName:    "Ana",
		Contact:     "555-0100",
		Location:    "12 Green Lane",
		Date:        "2024-07-20",
		Time:        "09:00",
	}).Return(&models.ServiceBooking{ID: "b1", Status: models.StatusPending}, nil)

	created, err := newBookingService(api).Create(context.Background(), "tok", validForm())
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)
	api.AssertExpectations(t)
}

func TestCreateBlockedOnMissingField(t *testing.T) {
	api := new(mockBookingAPI)
	form := validForm()
	form.Contact = ""

	_, err := newBookingService(api).Create(context.Background(), "tok", form)
	require.Error(t, err)
	assert.True(t, forms.IsValidationError(err))
	// Validation failure means no network call at all.
	api.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBlockedOnPastDate(t *testing.T) {
	api := new(mockBookingAPI)
	form := validForm()
	form.Date = "2024-07-14"

	_, err := newBookingService(api).Create(context.Background(), "tok", form)
	require.Error(t, err)
	assert.Equal(t, "invalid date", err.Error())
	api.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOnlyWhilePending(t *testing.T) {
	api := new(mockBookingAPI)
	api.On("ListBookings", mock.Anything, "tok").Return([]models.ServiceBooking{
		{ID: "b1", Status: models.StatusConfirmed},
	}, nil)

	err := newBookingService(api).Update(context.Background(), "tok", "b1", EditForm{Contact: "555-0200"})
	assert.ErrorIs(t, err, ErrNotEditable)
	api.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePendingBooking(t *testing.T) {
	api := new(mockBookingAPI)
	api.On("ListBookings", mock.Anything, "tok").Return([]models.ServiceBooking{
		{ID: "b1", Status: models.StatusPending},
	}, nil)
	api.On("UpdateBooking", mock.Anything, "tok", "b1", backend.BookingUpdate{
		Date: "2024-07-21", Time: "10:00",
	}).Return(nil)

	err := newBookingService(api).Update(context.Background(), "tok", "b1", EditForm{Date: "2024-07-21", Time: "10:00"})
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestDeleteUnknownBooking(t *testing.T) {
	api := new(mockBookingAPI)
	api.On("ListBookings", mock.Anything, "tok").Return([]models.ServiceBooking{}, nil)

	err := newBookingService(api).Delete(context.Background(), "tok", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
