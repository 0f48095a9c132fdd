// Package forms holds the synchronous pre-submission validation shared by
// the booking, pickup and inquiry flows. Validation failures block the
// submit entirely; no backend call is issued.
package forms

import (
	"fmt"
	"mime/multipart"
	"strings"
	"time"
)

// MaxImageSize is the attachment size ceiling.
const MaxImageSize = 5 << 20 // 5MB

// ValidationError is a first-violated-rule error surfaced to the user as
// a transient toast.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid constructs a ValidationError.
func Invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a pre-submission validation
// failure.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// RequireFields checks field presence in declaration order so the first
// violated rule is the one reported.
func RequireFields(fields ...[2]string) error {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			return Invalid("%s is required", f[0])
		}
	}
	return nil
}

// FutureDate validates that date ("2006-01-02") plus clock ("15:04")
// parse and land strictly after now.
func FutureDate(date, clock string, now time.Time) error {
	if strings.TrimSpace(date) == "" || strings.TrimSpace(clock) == "" {
		return Invalid("date and time are required")
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, now.Location())
	if err != nil {
		return Invalid("invalid date")
	}
	if !at.After(now) {
		return Invalid("invalid date")
	}
	return nil
}

// ValidateImage checks the attachment size and MIME type. header may be
// nil when the form has no attachment; required decides whether that is
// an error.
func ValidateImage(header *multipart.FileHeader, required bool) error {
	if header == nil {
		if required {
			return Invalid("an image attachment is required")
		}
		return nil
	}
	if header.Size > MaxImageSize {
		return Invalid("image must be 5MB or smaller")
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return Invalid("attachment must be an image")
	}
	return nil
}
