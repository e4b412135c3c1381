package attribute

// Link binds an attribute to the type-level scope of one entity kind: a
// product type for products and variants, a page type for pages, or the site
// settings for categories and collections.
type Link struct {
	id          int64
	kind        Kind
	attributeID int64
	scopeID     int64
	sortOrder   int
}

// NewLink creates an unsaved link.
func NewLink(kind Kind, attributeID, scopeID int64, sortOrder int) Link {
	return Link{kind: kind, attributeID: attributeID, scopeID: scopeID, sortOrder: sortOrder}
}

// ReconstructLink recreates a link from persistence.
func ReconstructLink(id int64, kind Kind, attributeID, scopeID int64, sortOrder int) Link {
	return Link{id: id, kind: kind, attributeID: attributeID, scopeID: scopeID, sortOrder: sortOrder}
}

// ID returns the link identifier.
func (l Link) ID() int64 { return l.id }

// Kind returns the entity kind the link applies to.
func (l Link) Kind() Kind { return l.kind }

// AttributeID returns the linked attribute.
func (l Link) AttributeID() int64 { return l.attributeID }

// ScopeID returns the product type, page type or site settings identifier.
func (l Link) ScopeID() int64 { return l.scopeID }

// SortOrder returns the link's position within its scope.
func (l Link) SortOrder() int { return l.sortOrder }
