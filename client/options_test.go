package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/tokenstore"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func okResponse() *http.Response {
	return &http.Response{
		StatusCode: 200,
		Body:       http.NoBody,
		Header:     make(http.Header),
	}
}

func TestWithHTTPTimeout(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}

func TestNew_UsesConfigTimeout(t *testing.T) {
	cfg := config.NewForTesting(false)
	cfg.Timeout = 3 * time.Second
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 3*time.Second {
		t.Fatalf("expected config timeout, got %v", c.http.Timeout)
	}
}

func TestWithHTTPClient_CopiesAndKeepsBase(t *testing.T) {
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return okResponse(), nil
	})
	hc := &http.Client{Transport: rt}
	c, err := New(config.NewForTesting(false), WithHTTPClient(hc), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := hc.Transport.(roundTripFunc); !ok {
		t.Fatalf("caller's client was modified")
	}
	if c.http.Timeout != 10*time.Second {
		t.Fatalf("expected config timeout on a zero-timeout client, got %v", c.http.Timeout)
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestOptions_RejectInvalidValues(t *testing.T) {
	cases := map[string]Option{
		"nil http client": WithHTTPClient(nil),
		"zero retries":    WithRetry(0),
		"nil store":       WithTokenStore(nil),
		"nil mock delay":  WithMockDelay(nil),
	}
	for name, opt := range cases {
		if _, err := New(config.NewForTesting(true), opt); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestTransportChainOrder(t *testing.T) {
	c, err := New(config.NewForTesting(false), WithTokenStore(tokenstore.NewMemory()), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	auth, ok := c.http.Transport.(*authTransport)
	if !ok {
		t.Fatalf("expected authTransport outermost, got %T", c.http.Transport)
	}
	rid, ok := auth.base.(*requestIDTransport)
	if !ok {
		t.Fatalf("expected requestIDTransport under auth, got %T", auth.base)
	}
	if _, ok := rid.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport innermost, got %T", rid.base)
	}
}

func TestRequestIDTransport_KeepsCallerID(t *testing.T) {
	var got string
	rt := &requestIDTransport{base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r.Header.Get(headerRequestID)
		return okResponse(), nil
	})}
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Set(headerRequestID, "caller-id")
	if _, err := rt.RoundTrip(req); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if got != "caller-id" {
		t.Fatalf("expected caller id to be kept, got %q", got)
	}
}
