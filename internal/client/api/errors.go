package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable reports that the server could not be reached at all.
var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-2xx response from the server. Message is the server's
// "message" field, verbatim; it may be empty when the body carried none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}
