package api

import (
	"encoding/json"
	"fmt"
)

// ErrUnavailable indicates the backend could not be reached, or kept
// failing through every retry attempt.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend unavailable: %v", e.Err)
	}
	return "backend unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrBadStatus indicates a non-2xx HTTP response.
type ErrBadStatus struct {
	Status int
	Body   string
}

func (e *ErrBadStatus) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// ErrInvalidPayload indicates the backend returned a body that does not
// conform to the expected schema.
type ErrInvalidPayload struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid backend payload: %v", e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }
