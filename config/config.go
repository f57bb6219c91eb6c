// Package config holds the settings a points-mall client is bound to: the
// mock/live switch, the environment, its base URLs and the logical path table.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment selects which base URL live requests are sent to.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ParseEnvironment accepts the full names and the dev/prod shorthands.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return EnvDevelopment, nil
	case "production", "prod":
		return EnvProduction, nil
	default:
		return "", fmt.Errorf("unsupported environment: %q", s)
	}
}

// ErrUnknownPathKey is returned when a logical path key has no entry in the
// path table. It always indicates a programming error.
var ErrUnknownPathKey = errors.New("unknown path key")

// Config is treated as immutable once handed to a client.
type Config struct {
	UseMock     bool
	Environment Environment
	BaseURLs    map[Environment]string
	Paths       map[PathKey]string
	Timeout     time.Duration
}

// envSpec is the environment variable surface, parsed from the MALL_ prefix.
// Example: MALL_USE_MOCK=false MALL_ENVIRONMENT=prod MALL_PATHS=GET_CART_LIST:/v2/cart
type envSpec struct {
	UseMock     bool              `envconfig:"USE_MOCK" default:"true"`
	Environment string            `envconfig:"ENVIRONMENT" default:"development"`
	DevBaseURL  string            `envconfig:"DEV_BASE_URL" default:"http://localhost:3000/api"`
	ProdBaseURL string            `envconfig:"PROD_BASE_URL" default:"https://api.xinfuli.com"`
	Timeout     time.Duration     `envconfig:"TIMEOUT" default:"10s"`
	Paths       map[string]string `envconfig:"PATHS"`
}

// Default returns the built-in configuration: mock data on, development
// environment, the standard path table and a 10 second timeout.
func Default() *Config {
	return &Config{
		UseMock:     true,
		Environment: EnvDevelopment,
		BaseURLs: map[Environment]string{
			EnvDevelopment: "http://localhost:3000/api",
			EnvProduction:  "https://api.xinfuli.com",
		},
		Paths:   DefaultPaths(),
		Timeout: 10 * time.Second,
	}
}

// New builds a Config from Default overlaid with MALL_* environment variables.
func New() (*Config, error) {
	var raw envSpec
	if err := envconfig.Process("MALL", &raw); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	env, err := ParseEnvironment(raw.Environment)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.UseMock = raw.UseMock
	cfg.Environment = env
	cfg.BaseURLs[EnvDevelopment] = raw.DevBaseURL
	cfg.BaseURLs[EnvProduction] = raw.ProdBaseURL
	cfg.Timeout = raw.Timeout
	for k, v := range raw.Paths {
		cfg.Paths[PathKey(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Bool("use_mock", cfg.UseMock).
		Str("environment", string(cfg.Environment)).
		Str("base_url", cfg.BaseURL()).
		Dur("timeout", cfg.Timeout).
		Int("path_overrides", len(raw.Paths)).
		Msg("Configuration loaded")

	return cfg, nil
}

// NewForTesting returns the default configuration with the mock switch set.
func NewForTesting(useMock bool) *Config {
	cfg := Default()
	cfg.UseMock = useMock
	return cfg
}

// Validate reports configuration that cannot serve requests.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("unsupported environment: %q", c.Environment)
	}
	if c.BaseURLs[c.Environment] == "" {
		return fmt.Errorf("no base URL configured for environment %s", c.Environment)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0")
	}
	return nil
}

// IsMock reports whether calls are served from fixtures.
func (c *Config) IsMock() bool { return c.UseMock }

// BaseURL returns the base URL of the selected environment.
func (c *Config) BaseURL() string { return c.BaseURLs[c.Environment] }

// ResolvePath joins the environment base URL with the path table entry for key.
func (c *Config) ResolvePath(key PathKey) (string, error) {
	p, ok := c.Paths[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPathKey, key)
	}
	return c.BaseURL() + p, nil
}

// Clone returns a deep copy so a client never shares maps with its caller.
func (c *Config) Clone() *Config {
	out := *c
	out.BaseURLs = make(map[Environment]string, len(c.BaseURLs))
	for k, v := range c.BaseURLs {
		out.BaseURLs[k] = v
	}
	out.Paths = make(map[PathKey]string, len(c.Paths))
	for k, v := range c.Paths {
		out.Paths[k] = v
	}
	return &out
}
