// Package persistence provides database storage implementations.
package persistence

import (
	"fmt"
	"strings"

	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/internal/database"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the stores use.
func AutoMigrate(db database.Database) error {
	gdb := db.GORM()

	if err := gdb.AutoMigrate(fixedModels()...); err != nil {
		return err
	}

	for _, t := range sortedKindTables() {
		if err := gdb.Table(t.links).AutoMigrate(&LinkModel{}); err != nil {
			return fmt.Errorf("migrate %s: %w", t.links, err)
		}
		if err := gdb.Table(t.assignments).AutoMigrate(&AssignmentModel{}); err != nil {
			return fmt.Errorf("migrate %s: %w", t.assignments, err)
		}
		if err := gdb.Table(t.values).AutoMigrate(&AssignedValueModel{}); err != nil {
			return fmt.Errorf("migrate %s: %w", t.values, err)
		}
	}

	return postMigrate(db)
}

// postMigrate creates the per-kind indexes that cannot be declared on the
// shared models, and on PostgreSQL the foreign keys between them.
// Idempotent: safe to run on every startup.
func postMigrate(db database.Database) error {
	gdb := db.GORM()

	for _, t := range sortedKindTables() {
		indexes := []struct {
			table   string
			name    string
			unique  bool
			columns string
		}{
			{t.links, "uq_" + t.links + "_scope_attribute", true, "scope_id, attribute_id"},
			{t.links, "ix_" + t.links + "_attribute", false, "attribute_id"},
			{t.assignments, "uq_" + t.assignments + "_entity_link", true, "entity_id, link_id"},
			{t.assignments, "ix_" + t.assignments + "_link", false, "link_id"},
			{t.values, "uq_" + t.values + "_assignment_value", true, "assignment_id, value_id"},
			{t.values, "ix_" + t.values + "_sort_order", false, "sort_order"},
		}
		for _, ix := range indexes {
			kind := "INDEX"
			if ix.unique {
				kind = "UNIQUE INDEX"
			}
			stmt := fmt.Sprintf(`CREATE %s IF NOT EXISTS %s ON %s (%s)`, kind, ix.name, ix.table, ix.columns)
			if err := gdb.Exec(stmt).Error; err != nil {
				return fmt.Errorf("create index %s: %w", ix.name, err)
			}
		}
	}

	if !db.IsPostgres() {
		return nil
	}

	for _, t := range sortedKindTables() {
		constraints := []struct {
			table      string
			name       string
			definition string
		}{
			{t.links, "fk_" + t.links + "_attribute", "FOREIGN KEY (attribute_id) REFERENCES attributes(id) ON DELETE CASCADE"},
			{t.links, "fk_" + t.links + "_scope", fmt.Sprintf("FOREIGN KEY (scope_id) REFERENCES %s(id) ON DELETE CASCADE", t.scope)},
			{t.assignments, "fk_" + t.assignments + "_entity", fmt.Sprintf("FOREIGN KEY (entity_id) REFERENCES %s(id) ON DELETE CASCADE", t.entities)},
			{t.assignments, "fk_" + t.assignments + "_link", fmt.Sprintf("FOREIGN KEY (link_id) REFERENCES %s(id) ON DELETE CASCADE", t.links)},
			{t.values, "fk_" + t.values + "_assignment", fmt.Sprintf("FOREIGN KEY (assignment_id) REFERENCES %s(id) ON DELETE CASCADE", t.assignments)},
			{t.values, "fk_" + t.values + "_value", "FOREIGN KEY (value_id) REFERENCES attribute_values(id) ON DELETE CASCADE"},
		}
		for _, c := range constraints {
			if err := gdb.Exec(fmt.Sprintf(
				`ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s`, c.table, c.name,
			)).Error; err != nil {
				return fmt.Errorf("drop constraint %s.%s: %w", c.table, c.name, err)
			}
			if err := gdb.Exec(fmt.Sprintf(
				`ALTER TABLE %s ADD CONSTRAINT %s %s`, c.table, c.name, c.definition,
			)).Error; err != nil {
				return fmt.Errorf("create constraint %s.%s: %w", c.table, c.name, err)
			}
		}
	}

	return nil
}

// fixedModels returns the models that map to a single table.
func fixedModels() []interface{} {
	return []interface{}{
		&AttributeModel{},
		&AttributeValueModel{},
		&SiteSettingsModel{},
		&ProductTypeModel{},
		&ProductModel{},
		&VariantModel{},
		&PageTypeModel{},
		&PageModel{},
		&CategoryModel{},
		&CollectionModel{},
	}
}

// sortedKindTables returns kindTables in a stable order so migrations run
// the same way on every start.
func sortedKindTables() []kindTable {
	tables := make([]kindTable, 0, len(kindTables))
	for _, kind := range attribute.Kinds() {
		tables = append(tables, kindTables[kind])
	}
	return tables
}

// ValidateSchema verifies every GORM model field has a corresponding column
// in the database. Returns an error listing any missing columns.
func ValidateSchema(db database.Database) error {
	gdb := db.GORM()
	migrator := gdb.Migrator()

	type target struct {
		model any
		table string
	}
	var targets []target
	for _, m := range fixedModels() {
		targets = append(targets, target{model: m})
	}
	for _, t := range sortedKindTables() {
		targets = append(targets,
			target{model: &LinkModel{}, table: t.links},
			target{model: &AssignmentModel{}, table: t.assignments},
			target{model: &AssignedValueModel{}, table: t.values},
		)
	}

	var missing []string
	for _, tg := range targets {
		stmt := &gorm.Statement{DB: gdb}
		if err := stmt.Parse(tg.model); err != nil {
			return fmt.Errorf("parse model schema: %w", err)
		}
		table := stmt.Table
		if tg.table != "" {
			table = tg.table
		}

		columnTypes, err := migrator.ColumnTypes(table)
		if err != nil {
			return fmt.Errorf("get column types for %s: %w", table, err)
		}

		actual := make(map[string]bool, len(columnTypes))
		for _, ct := range columnTypes {
			actual[ct.Name()] = true
		}

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" || field.DBName == "-" {
				continue
			}
			if !actual[field.DBName] {
				missing = append(missing, table+"."+field.DBName)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("schema validation failed, missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
