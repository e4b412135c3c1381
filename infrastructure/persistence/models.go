package persistence

// AttributeModel represents an attribute definition in the database.
type AttributeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Slug      string `gorm:"column:slug;uniqueIndex;size:250"`
	Name      string `gorm:"column:name;size:255"`
	InputType string `gorm:"column:input_type;size:50;default:dropdown"`
}

// TableName returns the table name.
func (AttributeModel) TableName() string {
	return "attributes"
}

// AttributeValueModel represents one value owned by an attribute.
type AttributeValueModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	AttributeID int64  `gorm:"column:attribute_id;index;uniqueIndex:idx_attribute_values_attribute_slug,priority:1"`
	Slug        string `gorm:"column:slug;size:255;uniqueIndex:idx_attribute_values_attribute_slug,priority:2"`
	Name        string `gorm:"column:name;size:250"`
	SortOrder   int    `gorm:"column:sort_order;index;default:0"`
}

// TableName returns the table name.
func (AttributeValueModel) TableName() string {
	return "attribute_values"
}

// The three models below back one table per entity kind and are always used
// through an explicit .Table() call. They carry no index tags: GORM derives
// index names from the struct, which would collide across tables. Indexes
// are created per table in postMigrate.

// LinkModel binds an attribute to a product type, page type or site settings.
type LinkModel struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	AttributeID int64 `gorm:"column:attribute_id;not null"`
	ScopeID     int64 `gorm:"column:scope_id;not null"`
	SortOrder   int   `gorm:"column:sort_order;default:0"`
}

// AssignmentModel joins an entity to a definition link.
type AssignmentModel struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	EntityID int64 `gorm:"column:entity_id;not null"`
	LinkID   int64 `gorm:"column:link_id;not null"`
}

// AssignedValueModel joins an assignment to one attribute value.
type AssignedValueModel struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	AssignmentID int64 `gorm:"column:assignment_id;not null"`
	ValueID      int64 `gorm:"column:value_id;not null"`
	SortOrder    int   `gorm:"column:sort_order;default:0"`
}

// SiteSettingsModel is the global settings record.
type SiteSettingsModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:255"`
}

// TableName returns the table name.
func (SiteSettingsModel) TableName() string {
	return "site_settings"
}

// ProductTypeModel represents a product type.
type ProductTypeModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:250"`
	Slug string `gorm:"column:slug;uniqueIndex;size:255"`
}

// TableName returns the table name.
func (ProductTypeModel) TableName() string {
	return "product_types"
}

// ProductModel represents a product.
type ProductModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	ProductTypeID int64  `gorm:"column:product_type_id;index;not null"`
	Name          string `gorm:"column:name;size:250"`
	Slug          string `gorm:"column:slug;uniqueIndex;size:255"`
}

// TableName returns the table name.
func (ProductModel) TableName() string {
	return "products"
}

// VariantModel represents a product variant.
type VariantModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"column:product_id;index;not null"`
	SKU       string `gorm:"column:sku;uniqueIndex;size:255"`
	Name      string `gorm:"column:name;size:255"`
}

// TableName returns the table name.
func (VariantModel) TableName() string {
	return "product_variants"
}

// PageTypeModel represents a page type.
type PageTypeModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:250"`
	Slug string `gorm:"column:slug;uniqueIndex;size:255"`
}

// TableName returns the table name.
func (PageTypeModel) TableName() string {
	return "page_types"
}

// PageModel represents a content page.
type PageModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	PageTypeID int64  `gorm:"column:page_type_id;index;not null"`
	Title      string `gorm:"column:title;size:250"`
	Slug       string `gorm:"column:slug;uniqueIndex;size:255"`
}

// TableName returns the table name.
func (PageModel) TableName() string {
	return "pages"
}

// CategoryModel represents a category.
type CategoryModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:250"`
	Slug string `gorm:"column:slug;uniqueIndex;size:255"`
}

// TableName returns the table name.
func (CategoryModel) TableName() string {
	return "categories"
}

// CollectionModel represents a collection.
type CollectionModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:250"`
	Slug string `gorm:"column:slug;uniqueIndex;size:255"`
}

// TableName returns the table name.
func (CollectionModel) TableName() string {
	return "collections"
}
