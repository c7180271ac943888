package inference

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotConfigured is returned before any network call when no API key is set
	ErrNotConfigured = errors.New("gemini API key is not configured, set GEMINI_API_KEY or gemini.api_key")
	// ErrInvalidInput is returned for an empty message
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnexpectedResponse is returned when the response carries no candidate text
	ErrUnexpectedResponse = errors.New("unexpected response from the Gemini API")
)

// APIError is a non-success response from the remote service
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error: %d %s - %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// NetworkError means the request did not complete
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to reach the Gemini API: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether a retry could succeed: network failures, 5xx and 429.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var networkErr *NetworkError
	if errors.As(err, &networkErr) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError ||
			apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}
