package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a non-2xx response from the backend. Message carries the
// server-provided message unchanged when one was present.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Code)
	}
	return fmt.Sprintf("request failed (status %d)", e.Code)
}

// IsUnauthorized reports whether err is an authentication rejection.
// The caller must clear the session and return to login when this is true.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusUnauthorized
}

// ServerMessage returns the server-provided message from err, or fallback
// when err carries none.
func ServerMessage(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
