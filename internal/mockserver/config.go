package mockserver

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the dev backend.
// Environment variables are parsed from the MALL_MOCK_SERVER_ prefix.
type Config struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"3000"`

	// PathPrefix is where the path table is mounted; it matches the path
	// component of the client's development base URL.
	PathPrefix string `envconfig:"PATH_PREFIX" default:"/api"`

	// SimulateLatency applies the client's 300-800ms mock delay server-side.
	SimulateLatency bool `envconfig:"SIMULATE_LATENCY" default:"false"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// New creates a Config by parsing environment variables.
// Example: MALL_MOCK_SERVER_HTTP_PORT=3001 MALL_MOCK_SERVER_SIMULATE_LATENCY=true
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MALL_MOCK_SERVER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Int("port", cfg.HTTPPort).
		Str("path_prefix", cfg.PathPrefix).
		Bool("simulate_latency", cfg.SimulateLatency).
		Dur("shutdown_timeout", cfg.ShutdownTimeout).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting returns a config with no latency and an ephemeral-friendly port.
func NewForTesting() *Config {
	return &Config{
		HTTPPort:        0,
		PathPrefix:      "/api",
		ShutdownTimeout: time.Second,
	}
}

func (c *Config) Validate() error {
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	if c.PathPrefix != "" && !strings.HasPrefix(c.PathPrefix, "/") {
		return fmt.Errorf("PATH_PREFIX must start with '/': %q", c.PathPrefix)
	}
	c.PathPrefix = strings.TrimSuffix(c.PathPrefix, "/")
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	return nil
}
