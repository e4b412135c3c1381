// Package main is the entry point for the catalog CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helixml/catalog/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Catalog attribute service",
		Long:          `Catalog assigns ordered attribute values to products, variants, pages, categories and collections.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("env-file", "", "Path to .env file (default: .env in current directory)")

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(stdioCmd())
	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(seedCmd())
	cmd.AddCommand(associateCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from the --env-file (or .env) and the environment.
func loadConfig(cmd *cobra.Command) (config.AppConfig, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
