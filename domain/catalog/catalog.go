// Package catalog holds the catalog records attributes are assigned to, and
// the type-level records their definition links hang off.
package catalog

// ProductType groups products that share attribute definitions.
type ProductType struct {
	id   int64
	name string
	slug string
}

// NewProductType creates an unsaved product type.
func NewProductType(name, slug string) ProductType {
	return ProductType{name: name, slug: slug}
}

// ReconstructProductType recreates a product type from persistence.
func ReconstructProductType(id int64, name, slug string) ProductType {
	return ProductType{id: id, name: name, slug: slug}
}

// ID returns the product type identifier.
func (p ProductType) ID() int64 { return p.id }

// Name returns the display name.
func (p ProductType) Name() string { return p.name }

// Slug returns the slug.
func (p ProductType) Slug() string { return p.slug }

// PageType groups pages that share attribute definitions.
type PageType struct {
	id   int64
	name string
	slug string
}

// NewPageType creates an unsaved page type.
func NewPageType(name, slug string) PageType {
	return PageType{name: name, slug: slug}
}

// ReconstructPageType recreates a page type from persistence.
func ReconstructPageType(id int64, name, slug string) PageType {
	return PageType{id: id, name: name, slug: slug}
}

// ID returns the page type identifier.
func (p PageType) ID() int64 { return p.id }

// Name returns the display name.
func (p PageType) Name() string { return p.name }

// Slug returns the slug.
func (p PageType) Slug() string { return p.slug }

// Product is a sellable item of some product type.
type Product struct {
	id            int64
	productTypeID int64
	name          string
	slug          string
}

// NewProduct creates an unsaved product.
func NewProduct(productTypeID int64, name, slug string) Product {
	return Product{productTypeID: productTypeID, name: name, slug: slug}
}

// ReconstructProduct recreates a product from persistence.
func ReconstructProduct(id, productTypeID int64, name, slug string) Product {
	return Product{id: id, productTypeID: productTypeID, name: name, slug: slug}
}

// ID returns the product identifier.
func (p Product) ID() int64 { return p.id }

// ProductTypeID returns the product's type.
func (p Product) ProductTypeID() int64 { return p.productTypeID }

// Name returns the display name.
func (p Product) Name() string { return p.name }

// Slug returns the slug.
func (p Product) Slug() string { return p.slug }

// Variant is a concrete purchasable form of a product.
type Variant struct {
	id        int64
	productID int64
	sku       string
	name      string
}

// NewVariant creates an unsaved variant.
func NewVariant(productID int64, sku, name string) Variant {
	return Variant{productID: productID, sku: sku, name: name}
}

// ReconstructVariant recreates a variant from persistence.
func ReconstructVariant(id, productID int64, sku, name string) Variant {
	return Variant{id: id, productID: productID, sku: sku, name: name}
}

// ID returns the variant identifier.
func (v Variant) ID() int64 { return v.id }

// ProductID returns the parent product.
func (v Variant) ProductID() int64 { return v.productID }

// SKU returns the stock keeping unit.
func (v Variant) SKU() string { return v.sku }

// Name returns the display name.
func (v Variant) Name() string { return v.name }

// Page is a content page of some page type.
type Page struct {
	id         int64
	pageTypeID int64
	title      string
	slug       string
}

// NewPage creates an unsaved page.
func NewPage(pageTypeID int64, title, slug string) Page {
	return Page{pageTypeID: pageTypeID, title: title, slug: slug}
}

// ReconstructPage recreates a page from persistence.
func ReconstructPage(id, pageTypeID int64, title, slug string) Page {
	return Page{id: id, pageTypeID: pageTypeID, title: title, slug: slug}
}

// ID returns the page identifier.
func (p Page) ID() int64 { return p.id }

// PageTypeID returns the page's type.
func (p Page) PageTypeID() int64 { return p.pageTypeID }

// Title returns the page title.
func (p Page) Title() string { return p.title }

// Slug returns the slug.
func (p Page) Slug() string { return p.slug }

// Category is a node in the product taxonomy.
type Category struct {
	id   int64
	name string
	slug string
}

// NewCategory creates an unsaved category.
func NewCategory(name, slug string) Category {
	return Category{name: name, slug: slug}
}

// ReconstructCategory recreates a category from persistence.
func ReconstructCategory(id int64, name, slug string) Category {
	return Category{id: id, name: name, slug: slug}
}

// ID returns the category identifier.
func (c Category) ID() int64 { return c.id }

// Name returns the display name.
func (c Category) Name() string { return c.name }

// Slug returns the slug.
func (c Category) Slug() string { return c.slug }

// Collection is a curated group of products.
type Collection struct {
	id   int64
	name string
	slug string
}

// NewCollection creates an unsaved collection.
func NewCollection(name, slug string) Collection {
	return Collection{name: name, slug: slug}
}

// ReconstructCollection recreates a collection from persistence.
func ReconstructCollection(id int64, name, slug string) Collection {
	return Collection{id: id, name: name, slug: slug}
}

// ID returns the collection identifier.
func (c Collection) ID() int64 { return c.id }

// Name returns the display name.
func (c Collection) Name() string { return c.name }

// Slug returns the slug.
func (c Collection) Slug() string { return c.slug }
