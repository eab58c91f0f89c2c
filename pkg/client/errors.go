package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure for uniform handling.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnreachable
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindServer
)

// APIError represents a non-2xx HTTP response from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// Kind maps the response status onto the failure taxonomy.
func (e *APIError) Kind() Kind {
	return kindForStatus(e.Status)
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusInternalServerError:
		return KindServer
	default:
		return KindUnknown
	}
}

// userMessage is the notification text shown for a failed call. The
// status-specific wording is fixed; anything unlisted falls through to
// the generic "Error: status - message" form.
func userMessage(status int, message string) string {
	switch status {
	case http.StatusUnauthorized:
		return "Unauthorized. Please login again."
	case http.StatusForbidden:
		return "Access forbidden."
	case http.StatusNotFound:
		return "Resource not found."
	case http.StatusInternalServerError:
		return "Internal server error. Please try again later."
	default:
		return fmt.Sprintf("Error: %d - %s", status, message)
	}
}

// unreachableMessage is shown when no response was received at all.
const unreachableMessage = "Unable to connect to server. Please check your connection."

// UserMessage returns the user-facing text for this failure.
func (e *APIError) UserMessage() string {
	return userMessage(e.Status, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == code
	}
	return false
}

// KindOf classifies any error returned by a Client call: APIErrors by
// status, everything else (no response received) as unreachable.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind()
	}
	return KindUnreachable
}
