package iamapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMalformedResponse is returned when a backend response decodes but
	// lacks required fields. The caller must treat this as "no session".
	ErrMalformedResponse = errors.New("malformed backend response")
)

// Error is an API-level rejection from the IAM backend. Message carries the
// human-readable message field of the error payload when present.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("iam api: %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("iam api: %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// UserMessage returns the backend message if present, or a generic fallback
// suitable for display.
func (e *Error) UserMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}

	return fallback
}

// errorPayload mirrors the backend error body {message: "..."}.
type errorPayload struct {
	Message string `json:"message"`
}
