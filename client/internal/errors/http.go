package errors

import "fmt"

// getHTTPErrorCategory maps HTTP status codes to error categories.
func getHTTPErrorCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// Unexpected status codes - be conservative and retry
		return Recoverable
	}
}

// NewHTTPError creates a classified error for a non-success status.
func NewHTTPError(method, url string, statusCode int, body string) *TransportError {
	return &TransportError{
		Category:   getHTTPErrorCategory(statusCode),
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("HTTP error! status: %d", statusCode),
	}
}

// NewNetworkError creates a classified error for network-level failures.
// Network errors are always recoverable as they may be transient.
func NewNetworkError(method, url string, err error) *TransportError {
	return &TransportError{
		Category:   Recoverable,
		Method:     method,
		URL:        url,
		Underlying: fmt.Errorf("network error: %w", err),
	}
}

// NewDecodeError creates an irrecoverable error for a success response whose
// body is not valid JSON for the expected shape. Resending will not fix it.
func NewDecodeError(method, url string, statusCode int, body string, err error) *TransportError {
	return &TransportError{
		Category:   Irrecoverable,
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("decode response: %w", err),
	}
}
