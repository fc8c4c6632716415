package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthExpired indicates the server rejected the session token. The
	// session has been cleared; the caller must re-authenticate.
	ErrAuthExpired = errors.New("session expired")

	// ErrConflict indicates an optimistic-lock violation (HTTP 409). Never
	// retried: the caller must re-fetch and resolve deliberately.
	ErrConflict = errors.New("conflicting concurrent write detected")

	// ErrNotImplemented marks an operation with no backing endpoint yet.
	// Distinct from empty data so integration gaps stay visible.
	ErrNotImplemented = errors.New("endpoint not implemented")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("retry attempts exhausted")
)

// StatusError is a terminal non-retryable HTTP failure (4xx other than 401
// and 409). Message carries the server-provided detail when the body had one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Code)
}
