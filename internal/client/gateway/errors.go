package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Fyandono/project-maintenance-system/internal/common"
)

// APIError is a non-2xx answer from the backend. Message carries the
// server-provided human-readable text when the body had one.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Unwrap maps the status class onto the shared sentinels so callers can
// branch with errors.Is without inspecting status codes themselves.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return common.ErrForbidden
	case e.Status == http.StatusNotFound:
		return common.ErrNotFound
	case e.Status >= 400 && e.Status < 500:
		return common.ErrValidation
	default:
		return common.ErrServer
	}
}

// ServerMessage extracts the backend's message from err when it is an
// APIError, or returns "" so the caller can fall back to a generic text.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
