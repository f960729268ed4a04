package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable is returned when no provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrUnexpectedShape marks a response body that lacks the expected result set layout.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

// StatusError captures a non-2xx upstream response.
type StatusError struct {
	Provider   string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	if e.URL != "" {
		msg += " from " + e.URL
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// ShapeError wraps ErrUnexpectedShape with the offending detail.
func ShapeError(provider, detail string) error {
	return fmt.Errorf("%s: %w: %s", provider, ErrUnexpectedShape, detail)
}
