package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xinfuli/points-mall/client"
	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/logger"
	"github.com/xinfuli/points-mall/tokenstore"
)

const commandTimeout = 30 * time.Second

// rootOptions carries the persistent flags to every sub-command.
type rootOptions struct {
	mock      bool
	env       string
	baseURL   string
	statePath string
	debug     bool
	retries   int
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "mallctl",
		Short:         "mallctl calls the points-mall API from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = logger.NewConsole(cmd.ErrOrStderr(), o.debug)
			log.Debug().Msg("debug logging enabled")
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&o.mock, "mock", true, "Serve responses from built-in fixtures (overrides MALL_USE_MOCK)")
	pf.StringVar(&o.env, "env", "", "Backend environment: development or production (overrides MALL_ENVIRONMENT)")
	pf.StringVar(&o.baseURL, "base-url", "", "Override the base URL of the selected environment")
	pf.StringVar(&o.statePath, "state", "", "Token database path (default ~/.points-mall/state.db)")
	pf.BoolVarP(&o.debug, "debug", "d", false, "Enable verbose debug output, including HTTP dumps")
	pf.IntVar(&o.retries, "retries", 1, "Total attempts for transient live failures")

	rootCmd.AddCommand(newHomeCmds(o)...)
	rootCmd.AddCommand(newCatalogCmds(o)...)
	rootCmd.AddCommand(newCartCmds(o)...)
	rootCmd.AddCommand(newUserCmds(o)...)
	rootCmd.AddCommand(newOrderCmds(o)...)
	rootCmd.AddCommand(newTokenCmd(o))

	return rootCmd
}

// loadConfig overlays the flags that were set on MALL_* configuration.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("mock") {
		cfg.UseMock = o.mock
	}
	if o.env != "" {
		env, err := config.ParseEnvironment(o.env)
		if err != nil {
			return nil, err
		}
		cfg.Environment = env
	}
	if o.baseURL != "" {
		cfg.BaseURLs[cfg.Environment] = o.baseURL
	}
	return cfg, cfg.Validate()
}

// openStore opens the persistent token store.
func (o *rootOptions) openStore() (*tokenstore.SQLite, error) {
	path := o.statePath
	if path == "" {
		p, err := tokenstore.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	log.Debug().Str("path", path).Msg("opening token store")
	return tokenstore.OpenSQLite(path)
}

// withClient builds a client for one command and closes it afterwards.
// Live clients carry the stored auth token.
func (o *rootOptions) withClient(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) error) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []client.Option{client.WithRetry(o.retries), client.WithDebugLogging(o.debug), client.WithLogger(log.Logger)}
	if !cfg.IsMock() {
		store, err := o.openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		opts = append(opts, client.WithTokenStore(store))
	}

	c, err := client.New(cfg, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	start := time.Now()
	err = fn(ctx, c)
	log.Debug().Str("command", cmd.Name()).Str("mode", c.Mode()).Dur("elapsed", time.Since(start)).Err(err).Msg("command finished")
	return err
}

// call wraps a single client operation as a cobra RunE that prints its result.
func call[T any](o *rootOptions, op func(ctx context.Context, c *client.Client, args []string) (T, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return o.withClient(cmd, func(ctx context.Context, c *client.Client) error {
			out, err := op(ctx, c, args)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		})
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
