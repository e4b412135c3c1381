package attribute

// SiteSettings is the global settings record that owns the category and
// collection attribute links.
type SiteSettings struct {
	id int64
}

// NewSiteSettings wraps a site settings identifier.
func NewSiteSettings(id int64) SiteSettings {
	return SiteSettings{id: id}
}

// ID returns the settings identifier.
func (s SiteSettings) ID() int64 { return s.id }

// Instance is a concrete catalog entity that attributes can be assigned to.
// It is a closed variant: values are only built through the constructors
// below, each of which captures the scope its definition links live under.
// The zero Instance is not a supported entity.
type Instance struct {
	kind    Kind
	id      int64
	scopeID int64
}

// ProductInstance identifies a product; links resolve against its product type.
func ProductInstance(productID, productTypeID int64) Instance {
	return Instance{kind: KindProduct, id: productID, scopeID: productTypeID}
}

// VariantInstance identifies a product variant; links resolve against the
// product type of the variant's product.
func VariantInstance(variantID, productTypeID int64) Instance {
	return Instance{kind: KindVariant, id: variantID, scopeID: productTypeID}
}

// PageInstance identifies a page; links resolve against its page type.
func PageInstance(pageID, pageTypeID int64) Instance {
	return Instance{kind: KindPage, id: pageID, scopeID: pageTypeID}
}

// CategoryInstance identifies a category; links resolve against the site
// settings' category attribute links.
func CategoryInstance(categoryID int64, settings SiteSettings) Instance {
	return Instance{kind: KindCategory, id: categoryID, scopeID: settings.ID()}
}

// CollectionInstance identifies a collection; links resolve against the site
// settings' collection attribute links.
func CollectionInstance(collectionID int64, settings SiteSettings) Instance {
	return Instance{kind: KindCollection, id: collectionID, scopeID: settings.ID()}
}

// Kind returns the entity kind.
func (i Instance) Kind() Kind { return i.kind }

// ID returns the entity identifier.
func (i Instance) ID() int64 { return i.id }

// ScopeID returns the identifier of the type-level record (product type,
// page type or site settings) whose links apply to this entity.
func (i Instance) ScopeID() int64 { return i.scopeID }

// Supported reports whether the instance was built by one of the constructors.
func (i Instance) Supported() bool { return i.kind.Valid() }
