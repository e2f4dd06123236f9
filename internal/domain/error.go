package domain

import (
	"errors"
	"fmt"
)

var (
	// Common domain errors
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyToken      = errors.New("commerce backend returned an empty access token")
)

// RemoteError reports a non-success response (or an undecodable body) from
// the commerce backend. The client attaches status and raw body and nothing
// else: no retries, no interpretation.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	body := e.Body
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Sprintf("commerce backend returned %d: %s", e.Status, body)
}

// ValidationError reports user input that failed a syntax check. It never
// crosses the handler that produced it; the handler turns it into a chat
// reply and keeps the state unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
