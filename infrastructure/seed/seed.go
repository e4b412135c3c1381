// Package seed loads catalog fixtures from YAML.
//
// A document declares attributes with their values, the entity types and
// entities of the catalog, the links that enable attributes per kind, and
// optional initial assignments:
//
//	site_settings: {name: Default}
//	product_types: [{name: Shirt, slug: shirt}]
//	attributes:
//	  - {name: Color, slug: color, values: [{name: Red, slug: red}, {name: Green, slug: green}]}
//	links:
//	  product: [{scope: shirt, attribute: color}]
//	products: [{name: Tee, slug: tee, product_type: shirt}]
//	assignments:
//	  - {kind: product, entity: tee, attribute: color, values: [green, red]}
//
// Entities are referenced by slug, variants by SKU.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/domain/catalog"
	"github.com/helixml/catalog/infrastructure/persistence"
	"github.com/helixml/catalog/internal/database"
)

// ErrUnknownReference indicates a document entry names an entity that the
// document does not declare.
var ErrUnknownReference = errors.New("unknown reference")

// Document is the YAML fixture layout.
type Document struct {
	SiteSettings *SiteSettings         `yaml:"site_settings"`
	ProductTypes []Named               `yaml:"product_types"`
	PageTypes    []Named               `yaml:"page_types"`
	Attributes   []Attribute           `yaml:"attributes"`
	Links        map[string][]LinkSpec `yaml:"links"`
	Products     []Product             `yaml:"products"`
	Variants     []Variant             `yaml:"variants"`
	Pages        []Page                `yaml:"pages"`
	Categories   []Named               `yaml:"categories"`
	Collections  []Named               `yaml:"collections"`
	Assignments  []Assignment          `yaml:"assignments"`
}

// SiteSettings declares the global settings row.
type SiteSettings struct {
	Name string `yaml:"name"`
}

// Named is an entry with a display name and slug.
type Named struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

// Attribute declares an attribute and its values in display order.
type Attribute struct {
	Name      string  `yaml:"name"`
	Slug      string  `yaml:"slug"`
	InputType string  `yaml:"input_type"`
	Values    []Named `yaml:"values"`
}

// LinkSpec enables an attribute for a scope. Scope is a product type slug
// for products and variants, a page type slug for pages, and ignored for
// categories and collections.
type LinkSpec struct {
	Scope     string `yaml:"scope"`
	Attribute string `yaml:"attribute"`
}

// Product declares a product of a product type.
type Product struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	ProductType string `yaml:"product_type"`
}

// Variant declares a variant of a product.
type Variant struct {
	SKU     string `yaml:"sku"`
	Name    string `yaml:"name"`
	Product string `yaml:"product"`
}

// Page declares a page of a page type.
type Page struct {
	Title    string `yaml:"title"`
	Slug     string `yaml:"slug"`
	PageType string `yaml:"page_type"`
}

// Assignment associates attribute values, by slug, with an entity.
type Assignment struct {
	Kind      string   `yaml:"kind"`
	Entity    string   `yaml:"entity"`
	Attribute string   `yaml:"attribute"`
	Values    []string `yaml:"values"`
}

// Parse decodes a document. Unknown fields are rejected.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("decode seed document: %w", err)
	}
	return doc, nil
}

// Associator applies an assignment by identifiers.
type Associator interface {
	AssociateByID(ctx context.Context, kind attribute.Kind, entityID, attributeID int64, valueIDs []int64) (attribute.Assignment, error)
}

// Stores groups the stores a document is written to.
type Stores struct {
	Attributes persistence.AttributeStore
	Links      persistence.LinkStore
	Catalog    persistence.CatalogStore
	Associator Associator
}

// Load writes doc in a single transaction and returns the identifiers of
// everything it created.
func Load(ctx context.Context, db database.Database, stores Stores, doc Document) (Index, error) {
	return database.WithTransactionResult(ctx, db, func(ctx context.Context) (Index, error) {
		l := loader{stores: stores, index: newIndex()}
		if err := l.load(ctx, doc); err != nil {
			return Index{}, err
		}
		return l.index, nil
	})
}

type loader struct {
	stores Stores
	index  Index
}

func (l *loader) load(ctx context.Context, doc Document) error {
	steps := []func(context.Context, Document) error{
		l.siteSettings,
		l.types,
		l.attributes,
		l.entities,
		l.links,
		l.assignments,
	}
	for _, step := range steps {
		if err := step(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) siteSettings(ctx context.Context, doc Document) error {
	if doc.SiteSettings == nil {
		return nil
	}
	settings, err := l.stores.Catalog.SaveSiteSettings(ctx, doc.SiteSettings.Name)
	if err != nil {
		return fmt.Errorf("save site settings: %w", err)
	}
	l.index.SiteSettings = settings.ID()
	return nil
}

func (l *loader) types(ctx context.Context, doc Document) error {
	for _, t := range doc.ProductTypes {
		saved, err := l.stores.Catalog.SaveProductType(ctx, catalog.NewProductType(t.Name, t.Slug))
		if err != nil {
			return fmt.Errorf("save product type %q: %w", t.Slug, err)
		}
		l.index.ProductTypes[t.Slug] = saved.ID()
	}
	for _, t := range doc.PageTypes {
		saved, err := l.stores.Catalog.SavePageType(ctx, catalog.NewPageType(t.Name, t.Slug))
		if err != nil {
			return fmt.Errorf("save page type %q: %w", t.Slug, err)
		}
		l.index.PageTypes[t.Slug] = saved.ID()
	}
	return nil
}

func (l *loader) attributes(ctx context.Context, doc Document) error {
	for _, a := range doc.Attributes {
		saved, err := l.stores.Attributes.Save(ctx, attribute.NewAttribute(a.Slug, a.Name, attribute.InputType(a.InputType)))
		if err != nil {
			return fmt.Errorf("save attribute %q: %w", a.Slug, err)
		}
		l.index.Attributes[a.Slug] = saved.ID()

		values := make(map[string]int64, len(a.Values))
		for i, v := range a.Values {
			value, err := l.stores.Attributes.SaveValue(ctx, attribute.NewValue(saved.ID(), v.Slug, v.Name, i))
			if err != nil {
				return fmt.Errorf("save value %q of %q: %w", v.Slug, a.Slug, err)
			}
			values[v.Slug] = value.ID()
		}
		l.index.Values[a.Slug] = values
	}
	return nil
}

func (l *loader) entities(ctx context.Context, doc Document) error {
	for _, p := range doc.Products {
		typeID, err := lookup(l.index.ProductTypes, "product type", p.ProductType)
		if err != nil {
			return err
		}
		saved, err := l.stores.Catalog.SaveProduct(ctx, catalog.NewProduct(typeID, p.Name, p.Slug))
		if err != nil {
			return fmt.Errorf("save product %q: %w", p.Slug, err)
		}
		l.index.Products[p.Slug] = saved.ID()
	}
	for _, v := range doc.Variants {
		productID, err := lookup(l.index.Products, "product", v.Product)
		if err != nil {
			return err
		}
		saved, err := l.stores.Catalog.SaveVariant(ctx, catalog.NewVariant(productID, v.SKU, v.Name))
		if err != nil {
			return fmt.Errorf("save variant %q: %w", v.SKU, err)
		}
		l.index.Variants[v.SKU] = saved.ID()
	}
	for _, p := range doc.Pages {
		typeID, err := lookup(l.index.PageTypes, "page type", p.PageType)
		if err != nil {
			return err
		}
		saved, err := l.stores.Catalog.SavePage(ctx, catalog.NewPage(typeID, p.Title, p.Slug))
		if err != nil {
			return fmt.Errorf("save page %q: %w", p.Slug, err)
		}
		l.index.Pages[p.Slug] = saved.ID()
	}
	for _, c := range doc.Categories {
		saved, err := l.stores.Catalog.SaveCategory(ctx, catalog.NewCategory(c.Name, c.Slug))
		if err != nil {
			return fmt.Errorf("save category %q: %w", c.Slug, err)
		}
		l.index.Categories[c.Slug] = saved.ID()
	}
	for _, c := range doc.Collections {
		saved, err := l.stores.Catalog.SaveCollection(ctx, catalog.NewCollection(c.Name, c.Slug))
		if err != nil {
			return fmt.Errorf("save collection %q: %w", c.Slug, err)
		}
		l.index.Collections[c.Slug] = saved.ID()
	}
	return nil
}

func (l *loader) links(ctx context.Context, doc Document) error {
	for name := range doc.Links {
		if kind, err := attribute.ParseKind(name); err != nil || kind.String() != name {
			return fmt.Errorf("links: %w: %q", attribute.ErrUnsupportedEntity, name)
		}
	}
	for _, kind := range attribute.Kinds() {
		specs := doc.Links[kind.String()]
		for i, spec := range specs {
			scopeID, err := l.scope(kind, spec.Scope)
			if err != nil {
				return err
			}
			attributeID, err := lookup(l.index.Attributes, "attribute", spec.Attribute)
			if err != nil {
				return err
			}
			if _, err := l.stores.Links.Save(ctx, attribute.NewLink(kind, attributeID, scopeID, i)); err != nil {
				return fmt.Errorf("save %s link for %q: %w", kind, spec.Attribute, err)
			}
		}
	}
	return nil
}

func (l *loader) scope(kind attribute.Kind, name string) (int64, error) {
	switch kind {
	case attribute.KindProduct, attribute.KindVariant:
		return lookup(l.index.ProductTypes, "product type", name)
	case attribute.KindPage:
		return lookup(l.index.PageTypes, "page type", name)
	default:
		if l.index.SiteSettings == 0 {
			return 0, fmt.Errorf("%w: %s links need site_settings", ErrUnknownReference, kind)
		}
		return l.index.SiteSettings, nil
	}
}

func (l *loader) assignments(ctx context.Context, doc Document) error {
	if len(doc.Assignments) > 0 && l.stores.Associator == nil {
		return errors.New("assignments declared without an associator")
	}
	for _, a := range doc.Assignments {
		kind, err := attribute.ParseKind(a.Kind)
		if err != nil {
			return err
		}
		entityID, err := l.index.Entity(kind, a.Entity)
		if err != nil {
			return err
		}
		attributeID, err := lookup(l.index.Attributes, "attribute", a.Attribute)
		if err != nil {
			return err
		}
		valueIDs := make([]int64, 0, len(a.Values))
		for _, slug := range a.Values {
			id, err := lookup(l.index.Values[a.Attribute], "value of "+a.Attribute, slug)
			if err != nil {
				return err
			}
			valueIDs = append(valueIDs, id)
		}
		if _, err := l.stores.Associator.AssociateByID(ctx, kind, entityID, attributeID, valueIDs); err != nil {
			return fmt.Errorf("assign %s to %s %q: %w", a.Attribute, kind, a.Entity, err)
		}
	}
	return nil
}

func lookup(ids map[string]int64, what, key string) (int64, error) {
	id, ok := ids[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownReference, what, key)
	}
	return id, nil
}
