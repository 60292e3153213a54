package trips

import (
	"errors"
	"fmt"
)

// ErrNoLaterResults is returned by ContinueLater when the upstream exposes
// no forward cursor. Boundary exhaustion is a normal terminal state, not a
// failure of the search itself.
var ErrNoLaterResults = errors.New("no later trips available")

// UpstreamError represents a transport or HTTP-level failure talking to the
// operator API
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream API error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("upstream API error: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates a new upstream API error
func NewUpstreamError(message string, err error) *UpstreamError {
	return &UpstreamError{
		Message: message,
		Err:     err,
	}
}

// MalformedResponseError means the search response could not be decoded as
// the expected document shape at all; it aborts the whole call.
type MalformedResponseError struct {
	Message string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("malformed response: %s", e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// MalformedItineraryError flags one unusable itinerary record: an unknown
// segment type or an unresolvable transfer station. The record is skipped
// and its siblings are still processed.
type MalformedItineraryError struct {
	UID     string
	Message string
	Err     error
}

func (e *MalformedItineraryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed itinerary %s: %s: %v", e.UID, e.Message, e.Err)
	}
	return fmt.Sprintf("malformed itinerary %s: %s", e.UID, e.Message)
}

func (e *MalformedItineraryError) Unwrap() error {
	return e.Err
}
