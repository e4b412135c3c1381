package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/domain/catalog"
	"github.com/helixml/catalog/internal/database"
	"gorm.io/gorm"
)

// CatalogStore reads and writes the catalog records attributes attach to,
// and resolves them into attribute.Instance values.
type CatalogStore struct {
	db           database.Database
	productTypes database.Repository[catalog.ProductType, ProductTypeModel]
	pageTypes    database.Repository[catalog.PageType, PageTypeModel]
	products     database.Repository[catalog.Product, ProductModel]
	variants     database.Repository[catalog.Variant, VariantModel]
	pages        database.Repository[catalog.Page, PageModel]
	categories   database.Repository[catalog.Category, CategoryModel]
	collections  database.Repository[catalog.Collection, CollectionModel]
}

// NewCatalogStore creates a new CatalogStore.
func NewCatalogStore(db database.Database) CatalogStore {
	return CatalogStore{
		db:           db,
		productTypes: database.NewRepository[catalog.ProductType, ProductTypeModel](db, ProductTypeMapper{}, "product type"),
		pageTypes:    database.NewRepository[catalog.PageType, PageTypeModel](db, PageTypeMapper{}, "page type"),
		products:     database.NewRepository[catalog.Product, ProductModel](db, ProductMapper{}, "product"),
		variants:     database.NewRepository[catalog.Variant, VariantModel](db, VariantMapper{}, "product variant"),
		pages:        database.NewRepository[catalog.Page, PageModel](db, PageMapper{}, "page"),
		categories:   database.NewRepository[catalog.Category, CategoryModel](db, CategoryMapper{}, "category"),
		collections:  database.NewRepository[catalog.Collection, CollectionModel](db, CollectionMapper{}, "collection"),
	}
}

// Instance loads the entity of the given kind and returns it with the scope
// its attribute links are resolved under.
func (s CatalogStore) Instance(ctx context.Context, kind attribute.Kind, id int64) (attribute.Instance, error) {
	switch kind {
	case attribute.KindProduct:
		p, err := s.products.Get(ctx, id)
		if err != nil {
			return attribute.Instance{}, fmt.Errorf("product %d: %w", id, err)
		}
		return attribute.ProductInstance(p.ID(), p.ProductTypeID()), nil
	case attribute.KindVariant:
		var row struct {
			ID            int64
			ProductTypeID int64
		}
		result := s.db.Session(ctx).
			Table("product_variants").
			Select("product_variants.id AS id, products.product_type_id AS product_type_id").
			Joins("JOIN products ON products.id = product_variants.product_id").
			Where("product_variants.id = ?", id).
			Limit(1).
			Scan(&row)
		if result.Error != nil {
			return attribute.Instance{}, fmt.Errorf("product variant %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return attribute.Instance{}, fmt.Errorf("product variant %d: %w", id, database.ErrNotFound)
		}
		return attribute.VariantInstance(row.ID, row.ProductTypeID), nil
	case attribute.KindPage:
		p, err := s.pages.Get(ctx, id)
		if err != nil {
			return attribute.Instance{}, fmt.Errorf("page %d: %w", id, err)
		}
		return attribute.PageInstance(p.ID(), p.PageTypeID()), nil
	case attribute.KindCategory:
		c, err := s.categories.Get(ctx, id)
		if err != nil {
			return attribute.Instance{}, fmt.Errorf("category %d: %w", id, err)
		}
		settings, err := s.SiteSettings(ctx)
		if err != nil {
			return attribute.Instance{}, err
		}
		return attribute.CategoryInstance(c.ID(), settings), nil
	case attribute.KindCollection:
		c, err := s.collections.Get(ctx, id)
		if err != nil {
			return attribute.Instance{}, fmt.Errorf("collection %d: %w", id, err)
		}
		settings, err := s.SiteSettings(ctx)
		if err != nil {
			return attribute.Instance{}, err
		}
		return attribute.CollectionInstance(c.ID(), settings), nil
	default:
		return attribute.Instance{}, fmt.Errorf("%w: %q", attribute.ErrUnsupportedEntity, kind)
	}
}

// SiteSettings returns the first site settings record.
func (s CatalogStore) SiteSettings(ctx context.Context) (attribute.SiteSettings, error) {
	var model SiteSettingsModel
	err := s.db.Session(ctx).Order("id ASC").First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attribute.SiteSettings{}, fmt.Errorf("%w: site settings", database.ErrNotFound)
	}
	if err != nil {
		return attribute.SiteSettings{}, fmt.Errorf("load site settings: %w", err)
	}
	return attribute.NewSiteSettings(model.ID), nil
}

// SaveSiteSettings returns the existing site settings, creating the record
// under name when none exists.
func (s CatalogStore) SaveSiteSettings(ctx context.Context, name string) (attribute.SiteSettings, error) {
	settings, err := s.SiteSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return attribute.SiteSettings{}, err
	}

	model := SiteSettingsModel{Name: name}
	if err := s.db.Session(ctx).Create(&model).Error; err != nil {
		return attribute.SiteSettings{}, fmt.Errorf("create site settings: %w", err)
	}
	return attribute.NewSiteSettings(model.ID), nil
}

// SaveProductType creates or updates a product type.
func (s CatalogStore) SaveProductType(ctx context.Context, p catalog.ProductType) (catalog.ProductType, error) {
	return s.productTypes.Save(ctx, p)
}

// SavePageType creates or updates a page type.
func (s CatalogStore) SavePageType(ctx context.Context, p catalog.PageType) (catalog.PageType, error) {
	return s.pageTypes.Save(ctx, p)
}

// SaveProduct creates or updates a product.
func (s CatalogStore) SaveProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	return s.products.Save(ctx, p)
}

// SaveVariant creates or updates a product variant.
func (s CatalogStore) SaveVariant(ctx context.Context, v catalog.Variant) (catalog.Variant, error) {
	return s.variants.Save(ctx, v)
}

// SavePage creates or updates a page.
func (s CatalogStore) SavePage(ctx context.Context, p catalog.Page) (catalog.Page, error) {
	return s.pages.Save(ctx, p)
}

// SaveCategory creates or updates a category.
func (s CatalogStore) SaveCategory(ctx context.Context, c catalog.Category) (catalog.Category, error) {
	return s.categories.Save(ctx, c)
}

// SaveCollection creates or updates a collection.
func (s CatalogStore) SaveCollection(ctx context.Context, c catalog.Collection) (catalog.Collection, error) {
	return s.collections.Save(ctx, c)
}
