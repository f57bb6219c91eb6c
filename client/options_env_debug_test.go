package client

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/xinfuli/points-mall/config"
)

// debugLayer digs the debug transport out from under the request-id wrapper.
func debugLayer(c *Client) (*debugTransport, bool) {
	rid, ok := c.http.Transport.(*requestIDTransport)
	if !ok {
		return nil, false
	}
	dt, ok := rid.base.(*debugTransport)
	return dt, ok
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	for _, env := range []string{"MALL_DEBUG", "DEBUG"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, "true")
			c, err := New(config.NewForTesting(false))
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if _, ok := debugLayer(c); !ok {
				t.Fatalf("expected debugTransport to be installed when %s=true", env)
			}
		})
	}
}

func TestNew_DebugFromEnvAndOptionInstallsOnce(t *testing.T) {
	t.Setenv("MALL_DEBUG", "true")
	var buf bytes.Buffer
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return okResponse(), nil
	})
	c, err := New(config.NewForTesting(false),
		WithHTTPClient(&http.Client{Transport: rt}),
		WithDebugLogging(true),
		WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dt, ok := debugLayer(c)
	if !ok {
		t.Fatalf("expected debugTransport to be installed")
	}
	if _, nested := dt.base.(*debugTransport); nested {
		t.Fatalf("debugTransport installed twice")
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com/api/user/info", http.NoBody)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if n := strings.Count(buf.String(), `"message":"HTTP request"`); n != 1 {
		t.Fatalf("expected one request dump, got %d", n)
	}
}

func TestDebugLogging_FalseKeepsEnvRequest(t *testing.T) {
	t.Setenv("DEBUG", "true")
	c, err := New(config.NewForTesting(false), WithDebugLogging(false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := debugLayer(c); !ok {
		t.Fatalf("expected env-requested debugTransport to stay installed")
	}
}

func TestNew_NoDebugByDefault(t *testing.T) {
	t.Setenv("MALL_DEBUG", "")
	t.Setenv("DEBUG", "")
	c, err := New(config.NewForTesting(false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := debugLayer(c); ok {
		t.Fatalf("debugTransport installed without being requested")
	}
}

func TestDebugTransport_LogsThroughClientLogger(t *testing.T) {
	var buf bytes.Buffer
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return okResponse(), nil
	})
	c, err := New(config.NewForTesting(false),
		WithHTTPClient(&http.Client{Transport: rt}),
		WithDebugLogging(true),
		WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com/api/home/banner", http.NoBody)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "HTTP request") || !strings.Contains(out, "HTTP response") {
		t.Fatalf("expected request and response dumps, got %q", out)
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	// base transport returns error
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New(config.NewForTesting(false), WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}
