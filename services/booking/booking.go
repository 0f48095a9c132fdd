package booking

import (
	"context"
	"errors"
	"time"

	"ecoclean/backend"
	"ecoclean/models"
	"ecoclean/services/forms"

	"go.uber.org/zap"
)

// ErrNotEditable is returned when an update or delete targets a record
// that has already left the Pending state. The backend enforces the same
// rule; this check just keeps the error message friendly.
var ErrNotEditable = errors.New("booking can no longer be changed")

// ErrNotFound is returned when the record id is not in the caller's list.
var ErrNotFound = errors.New("booking not found")

// BookingAPI is the slice of the backend client the booking flow needs.
type BookingAPI interface {
	ListBookings(ctx context.Context, token string) ([]models.ServiceBooking, error)
	CreateBooking(ctx context.Context, token string, payload backend.BookingPayload) (*models.ServiceBooking, error)
	UpdateBooking(ctx context.Context, token, id string, update backend.BookingUpdate) error
	DeleteBooking(ctx context.Context, token, id string) error
}

// BookingForm is the submitted booking form state.
type BookingForm struct {
	ServiceName string `json:"serviceName"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Location    string `json:"location"`
	Date        string `json:"date"` // 2006-01-02
	Time        string `json:"time"` // 15:04
}

// EditForm is the edit-draft for a Pending booking. Only these fields are
// re-submitted on save.
type EditForm struct {
	Contact  string `json:"contact"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// BookingService drives the standalone booking form flow.
type BookingService struct {
	Backend BookingAPI
	Logger  *zap.Logger
	Now     func() time.Time
}

func (s *BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Validate runs the synchronous field checks. The first violated rule is
// the returned error.
func (f BookingForm) Validate(now time.Time) error {
	if err := forms.RequireFields(
		[2]string{"service", f.ServiceName},
		[2]string{"name", f.Name},
		[2]string{"contact", f.Contact},
		[2]string{"location", f.Location},
	); err != nil {
		return err
	}
	return forms.FutureDate(f.Date, f.Time, now)
}

// Create validates the form and submits it. The booking endpoint expects
// its own payload shape; pickups build a different one.
func (s *BookingService) Create(ctx context.Context, token string, form BookingForm) (*models.ServiceBooking, error) {
	if err := form.Validate(s.now()); err != nil {
		return nil, err
	}
	created, err := s.Backend.CreateBooking(ctx, token, backend.BookingPayload{
		ServiceName: form.ServiceName,
		UserName:    form.Name,
		Contact:     form.Contact,
		Location:    form.Location,
		Date:        form.Date,
		Time:        form.Time,
	})
	if err != nil {
		s.Logger.Warn("booking create failed", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// List returns the caller's bookings unmodified.
func (s *BookingService) List(ctx context.Context, token string) ([]models.ServiceBooking, error) {
	return s.Backend.ListBookings(ctx, token)
}

// Update saves an edit-draft for a booking that is still Pending.
func (s *BookingService) Update(ctx context.Context, token, id string, draft EditForm) error {
	if draft.Date != "" || draft.Time != "" {
		if err := forms.FutureDate(draft.Date, draft.Time, s.now()); err != nil {
			return err
		}
	}
	if err := s.ensureEditable(ctx, token, id); err != nil {
		return err
	}
	return s.Backend.UpdateBooking(ctx, token, id, backend.BookingUpdate{
		Contact:  draft.Contact,
		Location: draft.Location,
		Date:     draft.Date,
		Time:     draft.Time,
	})
}

// Delete removes a booking that is still Pending.
func (s *BookingService) Delete(ctx context.Context, token, id string) error {
	if err := s.ensureEditable(ctx, token, id); err != nil {
		return err
	}
	return s.Backend.DeleteBooking(ctx, token, id)
}

func (s *BookingService) ensureEditable(ctx context.Context, token, id string) error {
	bookings, err := s.Backend.ListBookings(ctx, token)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		if b.ID == id {
			if !models.IsEditable(b.Status) {
				return ErrNotEditable
			}
			return nil
		}
	}
	return ErrNotFound
}
