package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/helixml/catalog"
	"github.com/helixml/catalog/internal/config"
)

// openClient opens the catalog database named by cfg. SQLite files are
// created under the data directory, which is made if missing.
func openClient(cfg config.AppConfig, logger *slog.Logger, extra ...catalog.Option) (*catalog.Client, error) {
	if strings.HasPrefix(cfg.DBURL(), "sqlite:") {
		if err := cfg.EnsureDataDir(); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	opts := []catalog.Option{
		catalog.WithDatabaseURL(cfg.DBURL()),
		catalog.WithLogger(logger),
		catalog.WithPool(cfg.Pool()),
	}
	opts = append(opts, extra...)

	client, err := catalog.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return client, nil
}

func closeClient(client *catalog.Client, logger *slog.Logger) {
	if err := client.Close(); err != nil {
		logger.Error("failed to close catalog client", slog.Any("error", err))
	}
}
