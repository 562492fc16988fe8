package agents

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when an agent's ID or alias ID is missing.
	ErrNotConfigured = errors.New("agent ID and/or agent alias ID are not configured")

	// ErrEmptyCompletion is returned when the completion stream drains to an
	// empty string.
	ErrEmptyCompletion = errors.New("agent returned an empty response")
)

// MalformedJSONError reports a completion that drained fully but did not
// decode as JSON. It is a distinct case from transport failures so callers
// can tell a broken agent reply from a failed call.
type MalformedJSONError struct {
	Raw string
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("agent returned a malformed JSON: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}
