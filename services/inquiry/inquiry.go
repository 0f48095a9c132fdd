package inquiry

import (
	"context"

	"ecoclean/backend"
	"ecoclean/models"
	"ecoclean/services/forms"

	"go.uber.org/zap"
)

// InquiryAPI is the slice of the backend client the inquiry flow needs.
type InquiryAPI interface {
	CreateInquiry(ctx context.Context, token string, payload backend.InquiryPayload) (*models.Inquiry, error)
	ListInquiries(ctx context.Context, token string) ([]models.Inquiry, error)
}

// InquiryForm is the submitted contact/inquiry form state.
type InquiryForm struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Validate checks field presence; first violated rule wins.
func (f InquiryForm) Validate() error {
	return forms.RequireFields(
		[2]string{"subject", f.Subject},
		[2]string{"message", f.Message},
		[2]string{"category", f.Category},
	)
}

// InquiryService submits and lists support inquiries.
type InquiryService struct {
	Backend InquiryAPI
	Logger  *zap.Logger
}

// Submit validates and sends the inquiry.
func (s *InquiryService) Submit(ctx context.Context, token string, form InquiryForm) (*models.Inquiry, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	created, err := s.Backend.CreateInquiry(ctx, token, backend.InquiryPayload{
		Subject:  form.Subject,
		Message:  form.Message,
		Category: form.Category,
	})
	if err != nil {
		s.Logger.Warn("inquiry submit failed", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// List returns the caller's inquiries with any staff responses.
func (s *InquiryService) List(ctx context.Context, token string) ([]models.Inquiry, error) {
	return s.Backend.ListInquiries(ctx, token)
}
