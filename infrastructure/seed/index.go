package seed

import "github.com/helixml/catalog/domain/attribute"

// Index maps the keys used in a document to the identifiers assigned on load.
type Index struct {
	SiteSettings int64
	ProductTypes map[string]int64
	PageTypes    map[string]int64
	Attributes   map[string]int64
	// Values is keyed by attribute slug, then value slug.
	Values      map[string]map[string]int64
	Products    map[string]int64
	Variants    map[string]int64
	Pages       map[string]int64
	Categories  map[string]int64
	Collections map[string]int64
}

func newIndex() Index {
	return Index{
		ProductTypes: map[string]int64{},
		PageTypes:    map[string]int64{},
		Attributes:   map[string]int64{},
		Values:       map[string]map[string]int64{},
		Products:     map[string]int64{},
		Variants:     map[string]int64{},
		Pages:        map[string]int64{},
		Categories:   map[string]int64{},
		Collections:  map[string]int64{},
	}
}

// Entity returns the identifier of the entity of kind declared under key.
func (i Index) Entity(kind attribute.Kind, key string) (int64, error) {
	switch kind {
	case attribute.KindProduct:
		return lookup(i.Products, "product", key)
	case attribute.KindVariant:
		return lookup(i.Variants, "variant", key)
	case attribute.KindPage:
		return lookup(i.Pages, "page", key)
	case attribute.KindCategory:
		return lookup(i.Categories, "category", key)
	case attribute.KindCollection:
		return lookup(i.Collections, "collection", key)
	default:
		return 0, attribute.ErrUnsupportedEntity
	}
}
