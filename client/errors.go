package client

import (
	"errors"

	clienterrors "github.com/xinfuli/points-mall/client/internal/errors"
	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/types"
)

// Re-exported so callers compare against a single symbol.
var (
	ErrUnknownPathKey    = config.ErrUnknownPathKey
	ErrMalformedEnvelope = types.ErrMalformedEnvelope
)

type (
	// TransportError reports a non-2xx HTTP status or a network failure.
	TransportError = clienterrors.TransportError
	// APIError reports an envelope whose code is not 200.
	APIError = types.APIError
)

// IsTransportError reports whether err wraps a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsAPIError reports whether err wraps a *APIError.
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
