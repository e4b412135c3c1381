package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/helixml/catalog/internal/log"
)

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load attributes, links and entities from a YAML file",
		Long: `Load a YAML fixture into the catalog in a single transaction.

The file may define site settings, product and page types, attributes with
their values, links, products, variants, pages, categories, collections and
assignments. Use "-" to read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := log.Configure(cfg)

			var r io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open seed file: %w", err)
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			client, err := openClient(cfg, logger)
			if err != nil {
				return err
			}
			defer closeClient(client, logger)

			idx, err := client.Seed(cmd.Context(), r)
			if err != nil {
				return fmt.Errorf("seed %s: %w", file, err)
			}

			logger.InfoContext(cmd.Context(), "seed loaded",
				slog.String("file", file),
				slog.Int("attributes", len(idx.Attributes)),
				slog.Int("products", len(idx.Products)),
				slog.Int("variants", len(idx.Variants)),
				slog.Int("pages", len(idx.Pages)),
				slog.Int("categories", len(idx.Categories)),
				slog.Int("collections", len(idx.Collections)),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file, or - for stdin")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
