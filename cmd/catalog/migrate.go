package main

import (
	"github.com/spf13/cobra"

	"github.com/helixml/catalog/internal/log"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := log.Configure(cfg)

			client, err := openClient(cfg, logger)
			if err != nil {
				return err
			}
			defer closeClient(client, logger)

			logger.InfoContext(cmd.Context(), "schema is up to date")
			return nil
		},
	}
}
