// Package apperr defines the error taxonomy shared by all endpoint features
// and its mapping to HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidDate is returned when a request date does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

	// ErrNoData is returned when the price provider has no entries for the
	// requested symbol and window.
	ErrNoData = errors.New("no data found for that symbol/date")

	// ErrNoDataBeforeDate is returned when the fetched series has no entry on
	// or before the requested date.
	ErrNoDataBeforeDate = errors.New("no data on or before that date")

	// ErrMissingCredential is returned when a required provider API key is
	// not configured.
	ErrMissingCredential = errors.New("search provider API key is not configured")
)

// UpstreamError reports a non-success response or transport failure from an
// external provider.
type UpstreamError struct {
	Provider string // provider name, e.g. "gdelt"
	Status   int    // provider HTTP status, 0 on transport failure
	Detail   string // body excerpt or transport error text
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Provider, e.Detail)
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s http %d", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s http %d: %s", e.Provider, e.Status, e.Detail)
}

// Upstream builds an UpstreamError for the given provider.
func Upstream(provider string, status int, detail string) *UpstreamError {
	return &UpstreamError{Provider: provider, Status: status, Detail: detail}
}

// Excerpt truncates s to at most max bytes for inclusion in error details.
func Excerpt(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// HTTPStatus maps an error from any feature usecase to the response status
// for the caller. Unknown errors are treated as upstream failures since the
// only error sources beyond the taxonomy are provider calls.
func HTTPStatus(err error) int {
	var ue *UpstreamError
	switch {
	case errors.Is(err, ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoData), errors.Is(err, ErrNoDataBeforeDate):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingCredential):
		return http.StatusInternalServerError
	case errors.As(err, &ue):
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
