package service

import (
	"context"
	"errors"
	"testing"

	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/domain/catalog"
	"github.com/helixml/catalog/infrastructure/persistence"
	"github.com/helixml/catalog/internal/database"
	"github.com/helixml/catalog/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attributeFixture struct {
	db      database.Database
	svc     *Attribute
	stores  persistence.AttributeStore
	links   persistence.LinkStore
	catalog persistence.CatalogStore

	color   attribute.Attribute
	red     attribute.Value
	blue    attribute.Value
	green   attribute.Value
	size    attribute.Attribute
	small   attribute.Value
	product attribute.Instance
	typeID  int64
}

// newAttributeFixture builds product P of type T with attribute Color
// (Red, Blue, Green) linked to T, and an unlinked attribute Size.
func newAttributeFixture(t *testing.T) attributeFixture {
	t.Helper()
	ctx := context.Background()
	db := testdb.New(t)

	f := attributeFixture{
		db:      db,
		stores:  persistence.NewAttributeStore(db),
		links:   persistence.NewLinkStore(db),
		catalog: persistence.NewCatalogStore(db),
	}
	f.svc = NewAttribute(f.stores, f.links, persistence.NewAssignmentStore(db), f.catalog)

	var err error
	f.color, err = f.stores.Save(ctx, attribute.NewAttribute("color", "Color", attribute.InputDropdown))
	require.NoError(t, err)
	f.red = saveValue(t, f.stores, f.color, "red", 0)
	f.blue = saveValue(t, f.stores, f.color, "blue", 1)
	f.green = saveValue(t, f.stores, f.color, "green", 2)

	f.size, err = f.stores.Save(ctx, attribute.NewAttribute("size", "Size", attribute.InputDropdown))
	require.NoError(t, err)
	f.small = saveValue(t, f.stores, f.size, "small", 0)

	productType, err := f.catalog.SaveProductType(ctx, catalog.NewProductType("T", "t"))
	require.NoError(t, err)
	f.typeID = productType.ID()
	product, err := f.catalog.SaveProduct(ctx, catalog.NewProduct(f.typeID, "P", "p"))
	require.NoError(t, err)
	f.product = attribute.ProductInstance(product.ID(), f.typeID)

	f.link(t, attribute.KindProduct, f.color, f.typeID)
	return f
}

func saveValue(t *testing.T, store persistence.AttributeStore, attr attribute.Attribute, slug string, order int) attribute.Value {
	t.Helper()
	v, err := store.SaveValue(context.Background(), attribute.NewValue(attr.ID(), slug, slug, order))
	require.NoError(t, err)
	return v
}

func (f attributeFixture) link(t *testing.T, kind attribute.Kind, attr attribute.Attribute, scopeID int64) {
	t.Helper()
	_, err := f.links.Save(context.Background(), attribute.NewLink(kind, attr.ID(), scopeID, 0))
	require.NoError(t, err)
}

func (f attributeFixture) assigned(t *testing.T, instance attribute.Instance, attr attribute.Attribute) attribute.Assignment {
	t.Helper()
	a, err := f.svc.Assigned(context.Background(), instance, attr.ID())
	require.NoError(t, err)
	return a
}

func TestAttribute_Associate_ColorScenario(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	a, err := f.svc.Associate(ctx, f.product, f.color, []attribute.Value{f.green, f.red})
	require.NoError(t, err)

	assert.Equal(t, []int64{f.green.ID(), f.red.ID()}, a.ValueIDs())
	values := a.Values()
	require.Len(t, values, 2)
	assert.Equal(t, 0, values[0].SortOrder())
	assert.Equal(t, 1, values[1].SortOrder())

	stored := f.assigned(t, f.product, f.color)
	assert.Equal(t, []int64{f.green.ID(), f.red.ID()}, stored.ValueIDs())
}

func TestAttribute_Associate_SortOrderFollowsRequest(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	orderings := [][]attribute.Value{
		{f.green, f.red, f.blue},
		{f.red, f.blue, f.green},
		{f.blue, f.green, f.red},
	}
	for _, ordering := range orderings {
		_, err := f.svc.Associate(ctx, f.product, f.color, ordering)
		require.NoError(t, err)

		stored := f.assigned(t, f.product, f.color)
		assert.Equal(t, attribute.ValueIDs(ordering), stored.ValueIDs())
		for i, row := range stored.Values() {
			assert.Equal(t, i, row.SortOrder())
		}
	}
}

func TestAttribute_Associate_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)
	values := []attribute.Value{f.blue, f.red}

	first, err := f.svc.Associate(ctx, f.product, f.color, values)
	require.NoError(t, err)
	second, err := f.svc.Associate(ctx, f.product, f.color, values)
	require.NoError(t, err)

	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, first.ValueIDs(), second.ValueIDs())

	var assignments int64
	require.NoError(t, f.db.Session(ctx).Table("assigned_product_attributes").Count(&assignments).Error)
	assert.Equal(t, int64(1), assignments)
}

func TestAttribute_Associate_DisjointSetReplaces(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	_, err := f.svc.Associate(ctx, f.product, f.color, []attribute.Value{f.red, f.blue})
	require.NoError(t, err)
	_, err = f.svc.Associate(ctx, f.product, f.color, []attribute.Value{f.green})
	require.NoError(t, err)

	stored := f.assigned(t, f.product, f.color)
	assert.Equal(t, []int64{f.green.ID()}, stored.ValueIDs())
}

func TestAttribute_Associate_EmptyClears(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	_, err := f.svc.Associate(ctx, f.product, f.color, []attribute.Value{f.red})
	require.NoError(t, err)
	a, err := f.svc.Associate(ctx, f.product, f.color, nil)
	require.NoError(t, err)

	assert.Empty(t, a.Values())
	assert.Empty(t, f.assigned(t, f.product, f.color).Values())
}

func TestAttribute_Associate_ForeignValueLeavesAssignmentUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	_, err := f.svc.Associate(ctx, f.product, f.color, []attribute.Value{f.blue, f.red})
	require.NoError(t, err)

	_, err = f.svc.Associate(ctx, f.product, f.color, []attribute.Value{f.green, f.small})
	require.Error(t, err)
	assert.ErrorIs(t, err, attribute.ErrValueOwnership)

	stored := f.assigned(t, f.product, f.color)
	assert.Equal(t, []int64{f.blue.ID(), f.red.ID()}, stored.ValueIDs())
}

func TestAttribute_Associate_ForeignValueWritesNothing(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	_, err := f.svc.Associate(ctx, f.product, f.color, []attribute.Value{f.small})
	require.ErrorIs(t, err, attribute.ErrValueOwnership)

	_, err = f.svc.Assigned(ctx, f.product, f.color.ID())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestAttribute_Associate_LinkNotFound(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	_, err := f.svc.Associate(ctx, f.product, f.size, []attribute.Value{f.small})
	assert.ErrorIs(t, err, attribute.ErrLinkNotFound)

	variant, err := f.catalog.SaveVariant(ctx, catalog.NewVariant(f.product.ID(), "P-1", "P one"))
	require.NoError(t, err)
	_, err = f.svc.Associate(ctx, attribute.VariantInstance(variant.ID(), f.typeID), f.color, []attribute.Value{f.red})
	assert.ErrorIs(t, err, attribute.ErrLinkNotFound, "product links do not apply to variants")
}

func TestAttribute_Associate_UnsupportedEntity(t *testing.T) {
	f := newAttributeFixture(t)

	_, err := f.svc.Associate(context.Background(), attribute.Instance{}, f.color, []attribute.Value{f.red})
	assert.ErrorIs(t, err, attribute.ErrUnsupportedEntity)
}

func TestAttribute_Associate_EveryKind(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	variant, err := f.catalog.SaveVariant(ctx, catalog.NewVariant(f.product.ID(), "P-1", "P one"))
	require.NoError(t, err)
	pageType, err := f.catalog.SavePageType(ctx, catalog.NewPageType("Article", "article"))
	require.NoError(t, err)
	page, err := f.catalog.SavePage(ctx, catalog.NewPage(pageType.ID(), "About", "about"))
	require.NoError(t, err)
	category, err := f.catalog.SaveCategory(ctx, catalog.NewCategory("Shirts", "shirts"))
	require.NoError(t, err)
	collection, err := f.catalog.SaveCollection(ctx, catalog.NewCollection("Summer", "summer"))
	require.NoError(t, err)
	settings, err := f.catalog.SaveSiteSettings(ctx, "default")
	require.NoError(t, err)

	f.link(t, attribute.KindVariant, f.color, f.typeID)
	f.link(t, attribute.KindPage, f.color, pageType.ID())
	f.link(t, attribute.KindCategory, f.color, settings.ID())
	f.link(t, attribute.KindCollection, f.color, settings.ID())

	instances := []attribute.Instance{
		f.product,
		attribute.VariantInstance(variant.ID(), f.typeID),
		attribute.PageInstance(page.ID(), pageType.ID()),
		attribute.CategoryInstance(category.ID(), settings),
		attribute.CollectionInstance(collection.ID(), settings),
	}
	for _, instance := range instances {
		t.Run(instance.Kind().String(), func(t *testing.T) {
			_, err := f.svc.Associate(ctx, instance, f.color, []attribute.Value{f.blue, f.green})
			require.NoError(t, err)
			assert.Equal(t, []int64{f.blue.ID(), f.green.ID()}, f.assigned(t, instance, f.color).ValueIDs())
		})
	}
}

func TestAttribute_AssociateByID(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	a, err := f.svc.AssociateByID(ctx, attribute.KindProduct, f.product.ID(), f.color.ID(), []int64{f.red.ID(), f.green.ID()})
	require.NoError(t, err)
	assert.Equal(t, []int64{f.red.ID(), f.green.ID()}, a.ValueIDs())

	byID, err := f.svc.AssignedByID(ctx, attribute.KindProduct, f.product.ID(), f.color.ID())
	require.NoError(t, err)
	assert.Equal(t, a.ID(), byID.ID())

	_, err = f.svc.AssociateByID(ctx, attribute.KindProduct, 999, f.color.ID(), nil)
	assert.ErrorIs(t, err, database.ErrNotFound)

	_, err = f.svc.AssociateByID(ctx, attribute.KindProduct, f.product.ID(), 999, nil)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestAttribute_SortValues_RowMissingFromRequest(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	a, err := f.svc.Associate(ctx, f.product, f.color, []attribute.Value{f.red, f.blue})
	require.NoError(t, err)

	_, err = f.svc.SortValues(ctx, a, []int64{f.red.ID()})
	assert.ErrorIs(t, err, attribute.ErrValueNotInAssignment)
}

func TestAttribute_ReplaceThenSortAreSeparateSteps(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	a, err := f.svc.Associate(ctx, f.product, f.color, []attribute.Value{f.red})
	require.NoError(t, err)

	ids := []int64{f.blue.ID(), f.red.ID()}
	require.NoError(t, f.svc.ReplaceValues(ctx, a, ids))
	ordered, err := f.svc.SortValues(ctx, a, ids)
	require.NoError(t, err)

	assert.Equal(t, ids, []int64{ordered[0].ValueID(), ordered[1].ValueID()})
}

func TestAttribute_AssociateInTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	_, err := f.svc.Associate(ctx, f.product, f.color, []attribute.Value{f.red})
	require.NoError(t, err)

	abort := errors.New("abort")
	err = database.WithTransaction(ctx, f.db, func(ctx context.Context) error {
		if _, err := f.svc.Associate(ctx, f.product, f.color, []attribute.Value{f.green, f.blue}); err != nil {
			return err
		}
		return abort
	})
	require.ErrorIs(t, err, abort)

	assert.Equal(t, []int64{f.red.ID()}, f.assigned(t, f.product, f.color).ValueIDs())
}

func TestAttribute_ValidateOwnership(t *testing.T) {
	ctx := context.Background()
	f := newAttributeFixture(t)

	require.NoError(t, f.svc.ValidateOwnership(ctx, f.color, nil))
	require.NoError(t, f.svc.ValidateOwnership(ctx, f.color, []int64{f.red.ID(), f.blue.ID()}))

	err := f.svc.ValidateOwnership(ctx, f.color, []int64{f.red.ID(), f.small.ID()})
	require.ErrorIs(t, err, attribute.ErrValueOwnership)
	assert.Contains(t, err.Error(), `"color"`)
}
