package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/internal/log"
)

func associateCmd() *cobra.Command {
	var (
		kind        string
		entityID    int64
		attributeID int64
		values      string
	)

	cmd := &cobra.Command{
		Use:   "associate",
		Short: "Assign ordered attribute values to an entity",
		Long: `Replace the values of an attribute on a product, variant, page,
category or collection. Values are displayed in the order given. An empty
--values clears the attribute.`,
		Example: `  catalog associate --kind product --entity 12 --attribute 3 --values 9,7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := attribute.ParseKind(kind)
			if err != nil {
				return err
			}
			valueIDs, err := parseIDs(values)
			if err != nil {
				return err
			}

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

			assignment, err := client.Associate(cmd.Context(), k, entityID, attributeID, valueIDs)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"assignment_id": assignment.ID(),
				"kind":          assignment.Kind().String(),
				"entity_id":     assignment.EntityID(),
				"value_ids":     assignment.ValueIDs(),
			})
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Entity kind: product, variant, page, category, collection")
	cmd.Flags().Int64Var(&entityID, "entity", 0, "Entity identifier")
	cmd.Flags().Int64Var(&attributeID, "attribute", 0, "Attribute identifier")
	cmd.Flags().StringVar(&values, "values", "", "Comma-separated value identifiers in display order")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("attribute")

	return cmd
}

// parseIDs parses a comma-separated list of identifiers. Blank input is an
// empty list.
func parseIDs(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
