package seed

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/helixml/catalog/application/service"
	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/infrastructure/persistence"
	"github.com/helixml/catalog/internal/database"
	"github.com/helixml/catalog/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStores(db database.Database) (Stores, *service.Attribute) {
	stores := Stores{
		Attributes: persistence.NewAttributeStore(db),
		Links:      persistence.NewLinkStore(db),
		Catalog:    persistence.NewCatalogStore(db),
	}
	svc := service.NewAttribute(stores.Attributes, stores.Links, persistence.NewAssignmentStore(db), stores.Catalog)
	stores.Associator = svc
	return stores, svc
}

func parseFile(t *testing.T, path string) Document {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	doc, err := Parse(f)
	require.NoError(t, err)
	return doc
}

func TestLoad_Fixture(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	stores, svc := newStores(db)

	index, err := Load(ctx, db, stores, parseFile(t, "testdata/catalog.yaml"))
	require.NoError(t, err)

	assert.NotZero(t, index.SiteSettings)
	assert.Len(t, index.Values["color"], 3)
	assert.Contains(t, index.Variants, "TEE-L")

	assignment, err := svc.AssignedByID(ctx, attribute.KindProduct, index.Products["tee"], index.Attributes["color"])
	require.NoError(t, err)
	assert.Equal(t, []int64{index.Values["color"]["green"], index.Values["color"]["red"]}, assignment.ValueIDs())

	assignment, err = svc.AssignedByID(ctx, attribute.KindVariant, index.Variants["TEE-L"], index.Attributes["material"])
	require.NoError(t, err)
	assert.Equal(t, []int64{index.Values["material"]["linen"]}, assignment.ValueIDs())

	assignment, err = svc.AssignedByID(ctx, attribute.KindCollection, index.Collections["summer"], index.Attributes["color"])
	require.NoError(t, err)
	assert.Equal(t, []int64{index.Values["color"]["blue"]}, assignment.ValueIDs())
}

func TestLoad_ValuesKeepDeclaredOrder(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	stores, _ := newStores(db)

	index, err := Load(ctx, db, stores, parseFile(t, "testdata/catalog.yaml"))
	require.NoError(t, err)

	values, err := stores.Attributes.Values(ctx, index.Attributes["color"])
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, "red", values[0].Slug())
	assert.Equal(t, "blue", values[1].Slug())
	assert.Equal(t, "green", values[2].Slug())
}

func TestLoad_UnknownReferenceRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	stores, _ := newStores(db)

	doc := Document{
		Attributes: []Attribute{{Name: "Color", Slug: "color"}},
		Products:   []Product{{Name: "Tee", Slug: "tee", ProductType: "missing"}},
	}

	_, err := Load(ctx, db, stores, doc)
	require.ErrorIs(t, err, ErrUnknownReference)

	count, err := stores.Attributes.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLoad_CategoryLinkNeedsSiteSettings(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	stores, _ := newStores(db)

	doc := Document{
		Attributes: []Attribute{{Name: "Color", Slug: "color"}},
		Links:      map[string][]LinkSpec{"category": {{Attribute: "color"}}},
	}

	_, err := Load(ctx, db, stores, doc)
	assert.ErrorIs(t, err, ErrUnknownReference)
}

func TestLoad_UnknownLinkKind(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	stores, _ := newStores(db)

	doc := Document{
		Attributes: []Attribute{{Name: "Color", Slug: "color"}},
		Links:      map[string][]LinkSpec{"warehouse": {{Attribute: "color"}}},
	}

	_, err := Load(ctx, db, stores, doc)
	assert.ErrorIs(t, err, attribute.ErrUnsupportedEntity)
}

func TestLoad_AssignmentsNeedAssociator(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	stores, _ := newStores(db)
	stores.Associator = nil

	_, err := Load(ctx, db, stores, Document{
		Assignments: []Assignment{{Kind: "product", Entity: "tee", Attribute: "color"}},
	})
	assert.Error(t, err)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("atributes: []\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	doc, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Attributes)
}

func TestIndex_Entity(t *testing.T) {
	index := newIndex()
	index.Pages["about"] = 9

	id, err := index.Entity(attribute.KindPage, "about")
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)

	_, err = index.Entity(attribute.KindCategory, "about")
	assert.ErrorIs(t, err, ErrUnknownReference)

	_, err = index.Entity(attribute.Kind("warehouse"), "about")
	assert.ErrorIs(t, err, attribute.ErrUnsupportedEntity)
}
