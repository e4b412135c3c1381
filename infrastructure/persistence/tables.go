package persistence

import (
	"fmt"

	"github.com/helixml/catalog/domain/attribute"
)

// kindTable names the link, assignment and assigned value tables of one
// entity kind.
type kindTable struct {
	links       string
	assignments string
	values      string
	// scope is the table the links' scope_id references.
	scope string
	// entities is the table the assignments' entity_id references.
	entities string
}

var kindTables = map[attribute.Kind]kindTable{
	attribute.KindProduct: {
		links:       "attribute_product_links",
		assignments: "assigned_product_attributes",
		values:      "assigned_product_attribute_values",
		scope:       "product_types",
		entities:    "products",
	},
	attribute.KindVariant: {
		links:       "attribute_variant_links",
		assignments: "assigned_variant_attributes",
		values:      "assigned_variant_attribute_values",
		scope:       "product_types",
		entities:    "product_variants",
	},
	attribute.KindPage: {
		links:       "attribute_page_links",
		assignments: "assigned_page_attributes",
		values:      "assigned_page_attribute_values",
		scope:       "page_types",
		entities:    "pages",
	},
	attribute.KindCategory: {
		links:       "category_attribute_links",
		assignments: "assigned_category_attributes",
		values:      "assigned_category_attribute_values",
		scope:       "site_settings",
		entities:    "categories",
	},
	attribute.KindCollection: {
		links:       "collection_attribute_links",
		assignments: "assigned_collection_attributes",
		values:      "assigned_collection_attribute_values",
		scope:       "site_settings",
		entities:    "collections",
	},
}

func tablesFor(kind attribute.Kind) (kindTable, error) {
	t, ok := kindTables[kind]
	if !ok {
		return kindTable{}, fmt.Errorf("%w: %q", attribute.ErrUnsupportedEntity, kind)
	}
	return t, nil
}
