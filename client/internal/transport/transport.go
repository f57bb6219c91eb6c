// Package transport provides the four verb helpers every live operation goes
// through: JSON in, JSON out, and a TransportError for any non-2xx status.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	clienterrors "github.com/xinfuli/points-mall/client/internal/errors"
)

// RetryPolicy controls the opt-in retry of recoverable failures.
// MaxAttempts <= 1 disables retries.
type RetryPolicy struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxInterval time.Duration
}

// Transport issues JSON requests over a caller-supplied *http.Client so the
// client's RoundTripper chain (auth, request id, debug) applies to every call.
type Transport struct {
	rc    *resty.Client
	retry RetryPolicy
}

// New wraps hc. The http.Client timeout is left as configured by the caller.
func New(hc *http.Client, retry RetryPolicy) *Transport {
	if retry.BaseBackoff <= 0 {
		retry.BaseBackoff = 100 * time.Millisecond
	}
	if retry.MaxInterval <= 0 {
		retry.MaxInterval = 2 * time.Second
	}
	rc := resty.NewWithClient(hc).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Transport{rc: rc, retry: retry}
}

// Get serializes query into the URL and decodes the response into out.
func (t *Transport) Get(ctx context.Context, url string, query map[string]string, out any) error {
	return t.do(ctx, http.MethodGet, url, query, nil, out)
}

// Post sends body as JSON. A nil body is sent as an empty object.
func (t *Transport) Post(ctx context.Context, url string, body any, out any) error {
	return t.do(ctx, http.MethodPost, url, nil, orEmpty(body), out)
}

// Put sends body as JSON. A nil body is sent as an empty object.
func (t *Transport) Put(ctx context.Context, url string, body any, out any) error {
	return t.do(ctx, http.MethodPut, url, nil, orEmpty(body), out)
}

// Delete issues a DELETE without a body.
func (t *Transport) Delete(ctx context.Context, url string, out any) error {
	return t.do(ctx, http.MethodDelete, url, nil, nil, out)
}

func (t *Transport) do(ctx context.Context, method, url string, query map[string]string, body any, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.retry.MaxAttempts <= 1 {
		return t.once(ctx, method, url, query, body, out)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = t.retry.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = t.retry.MaxInterval
	exp.Reset()
	b := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(t.retry.MaxAttempts-1)), ctx)

	return backoff.Retry(func() error {
		err := t.once(ctx, method, url, query, body, out)
		if err != nil && clienterrors.IsIrrecoverable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, b)
}

func (t *Transport) once(ctx context.Context, method, url string, query map[string]string, body any, out any) error {
	req := t.rc.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return clienterrors.NewNetworkError(method, url, err)
	}
	if !resp.IsSuccess() {
		return clienterrors.NewHTTPError(method, url, resp.StatusCode(), resp.String())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return clienterrors.NewDecodeError(method, url, resp.StatusCode(), resp.String(), err)
	}
	return nil
}

func orEmpty(body any) any {
	if body == nil {
		return struct{}{}
	}
	return body
}
