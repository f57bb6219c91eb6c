// Package errors defines the transport error raised by the verb helpers and
// classifies it so an opt-in retry policy can tell transient failures apart.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 500 Internal Server Error, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail immediately.
	// Examples: 400 Bad Request, 401 Unauthorized, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// TransportError is the single error kind raised for non-success HTTP
// statuses and network failures.
type TransportError struct {
	Category   ErrorCategory
	Method     string
	URL        string
	StatusCode int    // 0 for network-level failures; 2xx for undecodable bodies
	Body       string // response body for debugging
	Underlying error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode > 0 && (e.StatusCode < 200 || e.StatusCode > 299) {
		return fmt.Sprintf("%s %s: HTTP error! status: %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *TransportError) Unwrap() error {
	return e.Underlying
}

// IsIrrecoverable returns true if the error should not be retried.
func IsIrrecoverable(err error) bool {
	var te *TransportError
	if stderrors.As(err, &te) {
		return te.Category == Irrecoverable
	}
	return false
}
