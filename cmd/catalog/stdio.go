package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/helixml/catalog/internal/log"
	"github.com/helixml/catalog/internal/mcp"
)

func stdioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This lets AI assistants read and assign attribute values. Logs go to stderr.
Configuration is loaded from environment variables and .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := log.Configure(cfg)
			logger.Info("starting MCP server",
				slog.String("version", version),
				slog.String("data_dir", cfg.DataDir()),
			)

			client, err := openClient(cfg, logger)
			if err != nil {
				return err
			}
			defer closeClient(client, logger)

			return mcp.NewServer(client, version, logger).ServeStdio()
		},
	}
}
