// Package mockserver is a development backend that speaks the live
// points-mall wire contract, answering from the same fixtures as the client's
// mock mode.
package mockserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/logger"
	"github.com/xinfuli/points-mall/internal/mock"
)

// Server owns the router and its metrics registry.
type Server struct {
	cfg     *Config
	handler http.Handler
}

// NewServer builds the router over the default path table.
func NewServer(cfg *Config) (*Server, error) {
	delay := mock.NoDelay
	if cfg.SimulateLatency {
		delay = mock.RandomDelay
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	router, err := buildRouter(NewHandler(mock.NewSource(delay)), cfg.PathPrefix, config.DefaultPaths(), reg)
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, handler: router}, nil
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler { return s.handler }

// Run starts the dev backend and blocks until shutdown or error.
func Run() error {
	log := logger.New("mall-mock-server")

	cfg, err := New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	srv, err := NewServer(cfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to build router")
		return err
	}

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := newHTTPServer(ctx, cfg, srv.Handler())
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

func newHTTPServer(ctx context.Context, cfg *Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Str("path_prefix", cfg.PathPrefix).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}
