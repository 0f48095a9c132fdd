package pickup

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"ecoclean/backend"
	"ecoclean/models"
	"ecoclean/services/forms"
	"ecoclean/services/storage"

	"go.uber.org/zap"
)

// ErrNotEditable mirrors the booking-side rule: only Pending requests may
// be changed from the customer side.
var ErrNotEditable = errors.New("pickup request can no longer be changed")

// ErrNotFound is returned when the record id is not in the caller's list.
var ErrNotFound = errors.New("pickup request not found")

// PickupAPI is the slice of the backend client the pickup flow needs.
type PickupAPI interface {
	ListPickups(ctx context.Context, token string) ([]models.PickupRequest, error)
	CreatePickup(ctx context.Context, token string, payload backend.PickupPayload) (*models.PickupRequest, error)
	UpdatePickup(ctx context.Context, token, id string, update backend.PickupUpdate) error
	DeletePickup(ctx context.Context, token, id string) error
}

// PickupForm is the submitted pickup-request form state. The image comes
// in as a multipart file header and is validated before anything is
// uploaded or submitted.
type PickupForm struct {
	Name    string
	Contact string
	Address string
	Date    string // 2006-01-02
	Time    string // 15:04
	Image   *multipart.FileHeader
}

// EditForm is the edit-draft for a Pending pickup request.
type EditForm struct {
	Contact string `json:"contact"`
	Address string `json:"address"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// PickupService drives the pickup-request form flow. Unlike the booking
// flow it leaves the user on the page and hands back the refreshed list.
type PickupService struct {
	Backend PickupAPI
	Storage storage.StorageService
	Logger  *zap.Logger
	Now     func() time.Time
}

func (s *PickupService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Validate runs the synchronous checks; the image is required here.
func (f PickupForm) Validate(now time.Time) error {
	if err := forms.RequireFields(
		[2]string{"name", f.Name},
		[2]string{"contact", f.Contact},
		[2]string{"address", f.Address},
	); err != nil {
		return err
	}
	if err := forms.FutureDate(f.Date, f.Time, now); err != nil {
		return err
	}
	return forms.ValidateImage(f.Image, true)
}

// Create validates, uploads the image, submits the request, and returns
// the refreshed list. The saved temp file is removed either way.
func (s *PickupService) Create(ctx context.Context, token string, form PickupForm, tempFilePath string) ([]models.PickupRequest, error) {
	if err := form.Validate(s.now()); err != nil {
		return nil, err
	}

	imageURL, publicID, err := s.Storage.UploadImage(ctx, tempFilePath)
	if err != nil {
		s.Logger.Error("pickup image upload failed", zap.Error(err))
		return nil, err
	}

	_, err = s.Backend.CreatePickup(ctx, token, backend.PickupPayload{
		UserName: form.Name,
		Contact:  form.Contact,
		Address:  form.Address,
		Date:     form.Date,
		Time:     form.Time,
		ImageURL: imageURL,
	})
	if err != nil {
		// The backend never saw the record; drop the orphaned upload.
		if delErr := s.Storage.DeleteImage(ctx, publicID); delErr != nil {
			s.Logger.Warn("orphaned pickup image not deleted",
				zap.String("publicID", publicID), zap.Error(delErr))
		}
		return nil, err
	}

	return s.Backend.ListPickups(ctx, token)
}

// List returns the caller's pickup requests unmodified.
func (s *PickupService) List(ctx context.Context, token string) ([]models.PickupRequest, error) {
	return s.Backend.ListPickups(ctx, token)
}

// Update saves an edit-draft for a request that is still Pending.
func (s *PickupService) Update(ctx context.Context, token, id string, draft EditForm) error {
	if draft.Date != "" || draft.Time != "" {
		if err := forms.FutureDate(draft.Date, draft.Time, s.now()); err != nil {
			return err
		}
	}
	if err := s.ensureEditable(ctx, token, id); err != nil {
		return err
	}
	return s.Backend.UpdatePickup(ctx, token, id, backend.PickupUpdate{
		Contact: draft.Contact,
		Address: draft.Address,
		Date:    draft.Date,
		Time:    draft.Time,
	})
}

// Delete removes a request that is still Pending.
func (s *PickupService) Delete(ctx context.Context, token, id string) error {
	if err := s.ensureEditable(ctx, token, id); err != nil {
		return err
	}
	return s.Backend.DeletePickup(ctx, token, id)
}

func (s *PickupService) ensureEditable(ctx context.Context, token, id string) error {
	pickups, err := s.Backend.ListPickups(ctx, token)
	if err != nil {
		return err
	}
	for _, p := range pickups {
		if p.ID == id {
			if !models.IsEditable(p.Status) {
				return ErrNotEditable
			}
			return nil
		}
	}
	return ErrNotFound
}
