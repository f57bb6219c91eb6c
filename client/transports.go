package client

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/xinfuli/points-mall/tokenstore"
)

const headerRequestID = "X-Request-ID"

// requestIDTransport tags each request with a fresh X-Request-ID unless the
// caller already set one.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(headerRequestID) != "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set(headerRequestID, uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// authTransport adds "Authorization: Bearer <token>" when the store holds a
// token. Without one the request goes out unchanged.
type authTransport struct {
	base  http.RoundTripper
	store tokenstore.Store
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := tokenstore.GetToken(req.Context(), t.store)
	if err != nil {
		return nil, fmt.Errorf("read auth token: %w", err)
	}
	if token == "" {
		return t.base.RoundTrip(req)
	}
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(cloned)
}
