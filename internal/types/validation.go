package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedEnvelope is returned when a live response does not carry an
// envelope code.
var ErrMalformedEnvelope = errors.New("malformed response envelope")

// ValidateEnvelope checks the one field every backend response must carry.
func ValidateEnvelope[T any](e *Envelope[T]) error {
	if e == nil || e.Code == 0 {
		return ErrMalformedEnvelope
	}
	return nil
}

// ValidateIDPresent ensures a path identifier is not blank and forms a single
// path segment.
func ValidateIDPresent(id, name string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s is required", name)
	}
	if strings.Contains(id, "/") {
		return fmt.Errorf("%s must not contain '/'", name)
	}
	if id == "." || id == ".." {
		return fmt.Errorf("%s must not be a dot segment", name)
	}
	return nil
}

// ValidatePositive ensures a numeric identifier or quantity is set.
func ValidatePositive(v int, name string) error {
	if v <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}
