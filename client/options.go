package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/xinfuli/points-mall/internal/mock"
	"github.com/xinfuli/points-mall/tokenstore"
)

// Option configures a Client during construction in New.
//
// Options are applied before any wrapper is installed; the debug transport
// always sits directly above the base transport.
type Option func(*Client) error

// WithHTTPTimeout overrides the config timeout on the underlying http.Client.
// It bounds the total time spent on a single live request. The value must be
// greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient uses a copy of hc for live requests. Its Timeout is kept
// unless zero, in which case the config timeout applies. Place it before
// other transport options.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		if cp.Timeout == 0 {
			cp.Timeout = c.http.Timeout
		}
		c.http = &cp
		return nil
	}
}

// WithDebugLogging dumps each request/response when enabled is true. It never
// turns off debugging requested through MALL_DEBUG or DEBUG. Do not enable in
// production; dumps include headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithRetry retries recoverable live failures (5xx, 408, 429, network) up to
// maxAttempts total attempts with exponential backoff. The default is a
// single attempt.
func WithRetry(maxAttempts int) Option {
	return func(c *Client) error {
		if maxAttempts < 1 {
			return fmt.Errorf("max attempts must be >= 1")
		}
		c.retry.MaxAttempts = maxAttempts
		return nil
	}
}

// WithTokenStore attaches a token store; live requests carry
// "Authorization: Bearer <token>" whenever a token is stored.
func WithTokenStore(s tokenstore.Store) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("token store must not be nil")
		}
		c.store = s
		return nil
	}
}

// WithMockDelay replaces the simulated 300-800ms latency of mock mode.
// delay must return ctx.Err() if ctx ends first; NoMockDelay skips waiting.
func WithMockDelay(delay func(ctx context.Context) error) Option {
	return func(c *Client) error {
		if delay == nil {
			return fmt.Errorf("mock delay must not be nil")
		}
		c.mockDelay = delay
		return nil
	}
}

// NoMockDelay makes mock operations answer immediately.
func NoMockDelay(ctx context.Context) error { return mock.NoDelay(ctx) }

// WithLogger sets the logger used for client diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}
