package auth

import (
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck/pkg/client"
)

// AuthKind classifies a failed login for the login form.
type AuthKind int

const (
	KindServerError AuthKind = iota
	KindInvalidCredentials
	KindUnreachable
)

func (k AuthKind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUnreachable:
		return "unreachable"
	default:
		return "server_error"
	}
}

// AuthError is a login failure. Status is set for KindServerError only.
type AuthError struct {
	Kind   AuthKind
	Status int
	cause  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login: %s: %v", e.Kind, e.cause)
}

func (e *AuthError) Unwrap() error { return e.cause }

// UserMessage is the text the login form displays.
func (e *AuthError) UserMessage() string {
	switch e.Kind {
	case KindInvalidCredentials:
		return "Invalid username or password"
	case KindUnreachable:
		return "Unable to connect to server. Please check if the API is running."
	default:
		return fmt.Sprintf("Server error: %d - %s", e.Status, e.cause)
	}
}

// classifyLoginError maps a client failure onto the login taxonomy:
// 401 means bad credentials, no response means unreachable, everything
// else is a server error carrying its status.
func classifyLoginError(err error) *AuthError {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return &AuthError{Kind: KindUnreachable, cause: err}
	}
	if apiErr.Kind() == client.KindUnauthorized {
		return &AuthError{Kind: KindInvalidCredentials, Status: apiErr.Status, cause: err}
	}
	return &AuthError{Kind: KindServerError, Status: apiErr.Status, cause: err}
}
