package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/domain/repository"
	"github.com/helixml/catalog/internal/database"
	"gorm.io/gorm"
)

// LinkStore implements attribute.LinkStore with one table per entity kind.
type LinkStore struct {
	repos map[attribute.Kind]database.Repository[attribute.Link, LinkModel]
}

// NewLinkStore creates a new LinkStore.
func NewLinkStore(db database.Database) LinkStore {
	repos := make(map[attribute.Kind]database.Repository[attribute.Link, LinkModel], len(kindTables))
	for kind, t := range kindTables {
		repos[kind] = database.NewRepositoryForTable[attribute.Link, LinkModel](
			db, LinkMapper{kind: kind}, kind.String()+" attribute link", t.links,
		)
	}
	return LinkStore{repos: repos}
}

func (s LinkStore) repo(kind attribute.Kind) (database.Repository[attribute.Link, LinkModel], error) {
	r, ok := s.repos[kind]
	if !ok {
		return database.Repository[attribute.Link, LinkModel]{}, fmt.Errorf("%w: %q", attribute.ErrUnsupportedEntity, kind)
	}
	return r, nil
}

// Link returns the link of attributeID under scopeID for kind.
func (s LinkStore) Link(ctx context.Context, kind attribute.Kind, scopeID, attributeID int64) (attribute.Link, error) {
	r, err := s.repo(kind)
	if err != nil {
		return attribute.Link{}, err
	}

	link, err := r.FindOne(ctx, attribute.WithScopeID(scopeID), attribute.WithAttributeID(attributeID))
	if errors.Is(err, database.ErrNotFound) {
		return attribute.Link{}, fmt.Errorf("%w: attribute %d for %s scope %d", attribute.ErrLinkNotFound, attributeID, kind, scopeID)
	}
	if err != nil {
		return attribute.Link{}, err
	}
	return link, nil
}

// Links returns every link under scopeID for kind, in link order.
func (s LinkStore) Links(ctx context.Context, kind attribute.Kind, scopeID int64) ([]attribute.Link, error) {
	r, err := s.repo(kind)
	if err != nil {
		return nil, err
	}
	return r.Find(ctx,
		attribute.WithScopeID(scopeID),
		repository.WithOrderAsc("sort_order"),
		repository.WithOrderAsc("id"),
	)
}

// Save creates or updates a link in the table of its kind.
func (s LinkStore) Save(ctx context.Context, l attribute.Link) (attribute.Link, error) {
	r, err := s.repo(l.Kind())
	if err != nil {
		return attribute.Link{}, err
	}

	model := r.Mapper().ToModel(l)

	var result *gorm.DB
	if l.ID() == 0 {
		result = r.DB(ctx).Create(&model)
	} else {
		result = r.DB(ctx).Save(&model)
	}

	if result.Error != nil {
		return attribute.Link{}, fmt.Errorf("save %s: %w", r.Label(), result.Error)
	}
	return r.Mapper().ToDomain(model), nil
}
