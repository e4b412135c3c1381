// Package attribute models attribute definitions, their values, and the
// per-entity assignments that attach ordered value sets to catalog entities.
package attribute

import (
	"fmt"
	"strings"
)

// Kind identifies the catalog entity kind an assignment belongs to.
type Kind string

// Supported entity kinds.
const (
	KindProduct    Kind = "product"
	KindVariant    Kind = "variant"
	KindPage       Kind = "page"
	KindCategory   Kind = "category"
	KindCollection Kind = "collection"
)

// Kinds returns every supported kind in dispatch order.
func Kinds() []Kind {
	return []Kind{KindProduct, KindVariant, KindPage, KindCategory, KindCollection}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindProduct, KindVariant, KindPage, KindCategory, KindCollection:
		return true
	default:
		return false
	}
}

// UsesSiteSettings reports whether links for this kind hang off the global
// site settings rather than a per-entity type.
func (k Kind) UsesSiteSettings() bool {
	return k == KindCategory || k == KindCollection
}

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// ParseKind parses a kind name. "productvariant" and "product_variant" are
// accepted as aliases of "variant".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "product":
		return KindProduct, nil
	case "variant", "productvariant", "product_variant":
		return KindVariant, nil
	case "page":
		return KindPage, nil
	case "category":
		return KindCategory, nil
	case "collection":
		return KindCollection, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEntity, s)
	}
}
