package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/helixml/catalog/infrastructure/api"
	"github.com/helixml/catalog/internal/config"
	"github.com/helixml/catalog/internal/log"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST                         Server host to bind to (default: 0.0.0.0)
  PORT                         Server port to listen on (default: 8080)
  DATA_DIR                     Data directory (default: ~/.catalog)
  DB_URL                       Database URL (default: sqlite:///{data_dir}/catalog.db)
  DB_MAX_OPEN_CONNS            Open connection limit (default: 10)
  DB_MAX_IDLE_CONNS            Idle connection limit (default: 5)
  DB_CONN_MAX_LIFETIME_SECONDS Connection reuse limit (default: 1800)
  LOG_LEVEL                    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT                   Log format: pretty, json (default: pretty)
  API_KEYS                     Comma-separated keys accepted on write requests
  CORS_ALLOWED_ORIGINS         Comma-separated origins allowed to call the API
  REQUEST_TIMEOUT_SECONDS      API request timeout (default: 60)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), applyServeOverrides(cfg, host, port))
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(ctx context.Context, cfg config.AppConfig) error {
	logger := log.Configure(cfg)

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	logger.LogAttrs(ctx, slog.LevelInfo, "starting catalog", attrs...)

	client, err := openClient(cfg, logger)
	if err != nil {
		return err
	}
	defer closeClient(client, logger)

	server := api.NewAPIServer(client,
		api.WithAPIKeys(cfg.APIKeys()),
		api.WithCORSAllowedOrigins(cfg.CORSAllowedOrigins()),
		api.WithRequestTimeout(cfg.RequestTimeout()),
		api.WithVersion(version),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(cfg.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}

	return cfg.Apply(opts...)
}
