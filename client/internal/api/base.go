package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/types"
)

// Transport is the verb-helper surface the live source needs.
type Transport interface {
	Get(ctx context.Context, url string, query map[string]string, out any) error
	Post(ctx context.Context, url string, body any, out any) error
	Put(ctx context.Context, url string, body any, out any) error
	Delete(ctx context.Context, url string, out any) error
}

// Live sends every operation to the backend selected by cfg.
type Live struct {
	cfg *config.Config
	tr  Transport
}

// NewLive binds a live source to cfg and tr.
func NewLive(cfg *config.Config, tr Transport) *Live {
	return &Live{cfg: cfg, tr: tr}
}

// request describes one call: which logical path, which verb, and what to send.
type request struct {
	key    config.PathKey
	method string
	suffix string // appended to the resolved path, e.g. "/42"
	query  map[string]string
	body   any
}

// call resolves the path, issues the request and checks the envelope shape.
func call[T any](ctx context.Context, l *Live, r request) (*types.Envelope[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := l.cfg.ResolvePath(r.key)
	if err != nil {
		return nil, err
	}
	target += r.suffix

	var env types.Envelope[T]
	switch r.method {
	case http.MethodGet:
		err = l.tr.Get(ctx, target, r.query, &env)
	case http.MethodPost:
		err = l.tr.Post(ctx, target, r.body, &env)
	case http.MethodPut:
		err = l.tr.Put(ctx, target, r.body, &env)
	case http.MethodDelete:
		err = l.tr.Delete(ctx, target, &env)
	default:
		return nil, fmt.Errorf("%s: unsupported method %s", r.key, r.method)
	}
	if err != nil {
		return nil, err
	}
	if err := types.ValidateEnvelope(&env); err != nil {
		return nil, fmt.Errorf("%s: %w", r.key, err)
	}
	return &env, nil
}

// idSuffix escapes id so '?', '#' and '%' stay inside the path segment.
func idSuffix(id string) string { return "/" + url.PathEscape(id) }

func intSuffix(id int) string { return "/" + strconv.Itoa(id) }
