package attribute

import (
	"context"

	"github.com/helixml/catalog/domain/repository"
)

// AttributeStore persists attributes and their values.
type AttributeStore interface {
	repository.Store[Attribute]
	Get(ctx context.Context, id int64) (Attribute, error)
	Save(ctx context.Context, a Attribute) (Attribute, error)
	SaveValue(ctx context.Context, v Value) (Value, error)

	// Values returns the attribute's values ordered by their own sort order.
	Values(ctx context.Context, attributeID int64, options ...repository.Option) ([]Value, error)

	// ValueIDs returns the identifiers of every value the attribute owns.
	ValueIDs(ctx context.Context, attributeID int64) ([]int64, error)
}

// LinkStore resolves and persists attribute definition links.
type LinkStore interface {
	// Link returns the link of attributeID under scopeID for the given kind,
	// or ErrLinkNotFound.
	Link(ctx context.Context, kind Kind, scopeID, attributeID int64) (Link, error)
	Save(ctx context.Context, l Link) (Link, error)
}

// AssignmentStore persists assignments and their value rows.
//
// Replacing membership and rewriting sort order are separate calls; neither
// opens a transaction of its own.
type AssignmentStore interface {
	// GetOrCreate returns the assignment for (entityID, linkID), creating it
	// when absent.
	GetOrCreate(ctx context.Context, kind Kind, entityID, linkID int64) (Assignment, error)

	// Find returns the existing assignment for (entityID, linkID).
	Find(ctx context.Context, kind Kind, entityID, linkID int64) (Assignment, error)

	// ReplaceValues makes the assignment's value set exactly valueIDs,
	// keeping rows for values already present.
	ReplaceValues(ctx context.Context, a Assignment, valueIDs []int64) error

	// AssignedValues returns the assignment's rows ordered by sort order.
	AssignedValues(ctx context.Context, a Assignment) ([]AssignedValue, error)

	// UpdateSortOrder writes the sort order of every row in one statement.
	UpdateSortOrder(ctx context.Context, kind Kind, rows []AssignedValue) error
}
