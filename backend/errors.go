package backend

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the core backend rejects the caller's
// bearer token. The browser client reacts by redirecting to sign-in.
var ErrUnauthorized = errors.New("backend: unauthorized")

// APIError is a non-2xx response from the core backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend: status %d", e.StatusCode)
}

// RejectionError is a business rejection: HTTP 2xx but success=false in
// the response envelope. The message is shown to the user as-is.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return "backend: request rejected"
	}
	return "backend: " + e.Message
}

// IsRejection reports whether err is a business rejection and returns its
// user-facing message.
func IsRejection(err error) (string, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Message, true
	}
	return "", false
}
