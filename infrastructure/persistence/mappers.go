package persistence

import (
	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/domain/catalog"
)

// AttributeMapper maps between attribute.Attribute and AttributeModel.
type AttributeMapper struct{}

// ToDomain converts an AttributeModel to a domain Attribute.
func (m AttributeMapper) ToDomain(e AttributeModel) attribute.Attribute {
	return attribute.ReconstructAttribute(e.ID, e.Slug, e.Name, attribute.InputType(e.InputType))
}

// ToModel converts a domain Attribute to an AttributeModel.
func (m AttributeMapper) ToModel(a attribute.Attribute) AttributeModel {
	return AttributeModel{
		ID:        a.ID(),
		Slug:      a.Slug(),
		Name:      a.Name(),
		InputType: string(a.InputType()),
	}
}

// ValueMapper maps between attribute.Value and AttributeValueModel.
type ValueMapper struct{}

// ToDomain converts an AttributeValueModel to a domain Value.
func (m ValueMapper) ToDomain(e AttributeValueModel) attribute.Value {
	return attribute.ReconstructValue(e.ID, e.AttributeID, e.Slug, e.Name, e.SortOrder)
}

// ToModel converts a domain Value to an AttributeValueModel.
func (m ValueMapper) ToModel(v attribute.Value) AttributeValueModel {
	return AttributeValueModel{
		ID:          v.ID(),
		AttributeID: v.AttributeID(),
		Slug:        v.Slug(),
		Name:        v.Name(),
		SortOrder:   v.SortOrder(),
	}
}

// LinkMapper maps links of one kind. The kind is not stored; it is implied
// by the table.
type LinkMapper struct {
	kind attribute.Kind
}

// ToDomain converts a LinkModel to a domain Link.
func (m LinkMapper) ToDomain(e LinkModel) attribute.Link {
	return attribute.ReconstructLink(e.ID, m.kind, e.AttributeID, e.ScopeID, e.SortOrder)
}

// ToModel converts a domain Link to a LinkModel.
func (m LinkMapper) ToModel(l attribute.Link) LinkModel {
	return LinkModel{
		ID:          l.ID(),
		AttributeID: l.AttributeID(),
		ScopeID:     l.ScopeID(),
		SortOrder:   l.SortOrder(),
	}
}

// AssignmentMapper maps assignments of one kind.
type AssignmentMapper struct {
	kind attribute.Kind
}

// ToDomain converts an AssignmentModel to a domain Assignment.
func (m AssignmentMapper) ToDomain(e AssignmentModel) attribute.Assignment {
	return attribute.ReconstructAssignment(e.ID, m.kind, e.EntityID, e.LinkID)
}

// ToModel converts a domain Assignment to an AssignmentModel.
func (m AssignmentMapper) ToModel(a attribute.Assignment) AssignmentModel {
	return AssignmentModel{ID: a.ID(), EntityID: a.EntityID(), LinkID: a.LinkID()}
}

// AssignedValueMapper maps between attribute.AssignedValue and AssignedValueModel.
type AssignedValueMapper struct{}

// ToDomain converts an AssignedValueModel to a domain AssignedValue.
func (m AssignedValueMapper) ToDomain(e AssignedValueModel) attribute.AssignedValue {
	return attribute.ReconstructAssignedValue(e.ID, e.AssignmentID, e.ValueID, e.SortOrder)
}

// ToModel converts a domain AssignedValue to an AssignedValueModel.
func (m AssignedValueMapper) ToModel(v attribute.AssignedValue) AssignedValueModel {
	return AssignedValueModel{
		ID:           v.ID(),
		AssignmentID: v.AssignmentID(),
		ValueID:      v.ValueID(),
		SortOrder:    v.SortOrder(),
	}
}

// ProductTypeMapper maps product types.
type ProductTypeMapper struct{}

// ToDomain converts a ProductTypeModel to a domain ProductType.
func (ProductTypeMapper) ToDomain(e ProductTypeModel) catalog.ProductType {
	return catalog.ReconstructProductType(e.ID, e.Name, e.Slug)
}

// ToModel converts a domain ProductType to a ProductTypeModel.
func (ProductTypeMapper) ToModel(p catalog.ProductType) ProductTypeModel {
	return ProductTypeModel{ID: p.ID(), Name: p.Name(), Slug: p.Slug()}
}

// PageTypeMapper maps page types.
type PageTypeMapper struct{}

// ToDomain converts a PageTypeModel to a domain PageType.
func (PageTypeMapper) ToDomain(e PageTypeModel) catalog.PageType {
	return catalog.ReconstructPageType(e.ID, e.Name, e.Slug)
}

// ToModel converts a domain PageType to a PageTypeModel.
func (PageTypeMapper) ToModel(p catalog.PageType) PageTypeModel {
	return PageTypeModel{ID: p.ID(), Name: p.Name(), Slug: p.Slug()}
}

// ProductMapper maps products.
type ProductMapper struct{}

// ToDomain converts a ProductModel to a domain Product.
func (ProductMapper) ToDomain(e ProductModel) catalog.Product {
	return catalog.ReconstructProduct(e.ID, e.ProductTypeID, e.Name, e.Slug)
}

// ToModel converts a domain Product to a ProductModel.
func (ProductMapper) ToModel(p catalog.Product) ProductModel {
	return ProductModel{ID: p.ID(), ProductTypeID: p.ProductTypeID(), Name: p.Name(), Slug: p.Slug()}
}

// VariantMapper maps product variants.
type VariantMapper struct{}

// ToDomain converts a VariantModel to a domain Variant.
func (VariantMapper) ToDomain(e VariantModel) catalog.Variant {
	return catalog.ReconstructVariant(e.ID, e.ProductID, e.SKU, e.Name)
}

// ToModel converts a domain Variant to a VariantModel.
func (VariantMapper) ToModel(v catalog.Variant) VariantModel {
	return VariantModel{ID: v.ID(), ProductID: v.ProductID(), SKU: v.SKU(), Name: v.Name()}
}

// PageMapper maps pages.
type PageMapper struct{}

// ToDomain converts a PageModel to a domain Page.
func (PageMapper) ToDomain(e PageModel) catalog.Page {
	return catalog.ReconstructPage(e.ID, e.PageTypeID, e.Title, e.Slug)
}

// ToModel converts a domain Page to a PageModel.
func (PageMapper) ToModel(p catalog.Page) PageModel {
	return PageModel{ID: p.ID(), PageTypeID: p.PageTypeID(), Title: p.Title(), Slug: p.Slug()}
}

// CategoryMapper maps categories.
type CategoryMapper struct{}

// ToDomain converts a CategoryModel to a domain Category.
func (CategoryMapper) ToDomain(e CategoryModel) catalog.Category {
	return catalog.ReconstructCategory(e.ID, e.Name, e.Slug)
}

// ToModel converts a domain Category to a CategoryModel.
func (CategoryMapper) ToModel(c catalog.Category) CategoryModel {
	return CategoryModel{ID: c.ID(), Name: c.Name(), Slug: c.Slug()}
}

// CollectionMapper maps collections.
type CollectionMapper struct{}

// ToDomain converts a CollectionModel to a domain Collection.
func (CollectionMapper) ToDomain(e CollectionModel) catalog.Collection {
	return catalog.ReconstructCollection(e.ID, e.Name, e.Slug)
}

// ToModel converts a domain Collection to a CollectionModel.
func (CollectionMapper) ToModel(c catalog.Collection) CollectionModel {
	return CollectionModel{ID: c.ID(), Name: c.Name(), Slug: c.Slug()}
}
