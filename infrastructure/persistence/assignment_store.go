package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/domain/repository"
	"github.com/helixml/catalog/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type assignmentTables struct {
	assignments database.Repository[attribute.Assignment, AssignmentModel]
	values      database.Repository[attribute.AssignedValue, AssignedValueModel]
}

// AssignmentStore implements attribute.AssignmentStore with one pair of
// tables per entity kind.
type AssignmentStore struct {
	tables map[attribute.Kind]assignmentTables
}

// NewAssignmentStore creates a new AssignmentStore.
func NewAssignmentStore(db database.Database) AssignmentStore {
	tables := make(map[attribute.Kind]assignmentTables, len(kindTables))
	for kind, t := range kindTables {
		tables[kind] = assignmentTables{
			assignments: database.NewRepositoryForTable[attribute.Assignment, AssignmentModel](
				db, AssignmentMapper{kind: kind}, kind.String()+" assignment", t.assignments,
			),
			values: database.NewRepositoryForTable[attribute.AssignedValue, AssignedValueModel](
				db, AssignedValueMapper{}, kind.String()+" assigned value", t.values,
			),
		}
	}
	return AssignmentStore{tables: tables}
}

func (s AssignmentStore) forKind(kind attribute.Kind) (assignmentTables, error) {
	t, ok := s.tables[kind]
	if !ok {
		return assignmentTables{}, fmt.Errorf("%w: %q", attribute.ErrUnsupportedEntity, kind)
	}
	return t, nil
}

// Find returns the assignment for (entityID, linkID), or database.ErrNotFound.
func (s AssignmentStore) Find(ctx context.Context, kind attribute.Kind, entityID, linkID int64) (attribute.Assignment, error) {
	t, err := s.forKind(kind)
	if err != nil {
		return attribute.Assignment{}, err
	}
	return t.assignments.FindOne(ctx, attribute.WithEntityID(entityID), attribute.WithLinkID(linkID))
}

// GetOrCreate returns the assignment for (entityID, linkID), inserting it
// when absent. A row inserted concurrently by another writer is re-read
// rather than reported as a conflict.
func (s AssignmentStore) GetOrCreate(ctx context.Context, kind attribute.Kind, entityID, linkID int64) (attribute.Assignment, error) {
	t, err := s.forKind(kind)
	if err != nil {
		return attribute.Assignment{}, err
	}

	existing, err := s.Find(ctx, kind, entityID, linkID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return attribute.Assignment{}, err
	}

	model := AssignmentModel{EntityID: entityID, LinkID: linkID}
	result := t.assignments.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entity_id"}, {Name: "link_id"}},
			DoNothing: true,
		}).
		Create(&model)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return attribute.Assignment{}, fmt.Errorf("create %s: %w", t.assignments.Label(), result.Error)
	}
	if result.Error != nil || result.RowsAffected == 0 {
		return s.Find(ctx, kind, entityID, linkID)
	}
	return t.assignments.Mapper().ToDomain(model), nil
}

// ReplaceValues makes the assignment's value set exactly valueIDs. Rows for
// values already assigned are kept with their sort order; new rows are
// inserted at their requested position.
func (s AssignmentStore) ReplaceValues(ctx context.Context, a attribute.Assignment, valueIDs []int64) error {
	t, err := s.forKind(a.Kind())
	if err != nil {
		return err
	}
	ids := uniqueIDs(valueIDs)

	remove := []repository.Option{attribute.WithAssignmentID(a.ID())}
	if len(ids) > 0 {
		remove = append(remove, attribute.WithValueIDNotIn(ids))
	}
	if _, err := t.values.DeleteBy(ctx, remove...); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	var present []int64
	err = t.values.DB(ctx).
		Model(&AssignedValueModel{}).
		Where("assignment_id = ?", a.ID()).
		Pluck("value_id", &present).Error
	if err != nil {
		return fmt.Errorf("list %s rows: %w", t.values.Label(), err)
	}
	have := make(map[int64]struct{}, len(present))
	for _, id := range present {
		have[id] = struct{}{}
	}

	var missing []AssignedValueModel
	for i, id := range ids {
		if _, ok := have[id]; ok {
			continue
		}
		missing = append(missing, AssignedValueModel{AssignmentID: a.ID(), ValueID: id, SortOrder: i})
	}
	if len(missing) == 0 {
		return nil
	}
	if err := t.values.DB(ctx).Create(&missing).Error; err != nil {
		return fmt.Errorf("create %s rows: %w", t.values.Label(), err)
	}
	return nil
}

// AssignedValues returns the assignment's rows ordered by sort order, then id.
func (s AssignmentStore) AssignedValues(ctx context.Context, a attribute.Assignment) ([]attribute.AssignedValue, error) {
	t, err := s.forKind(a.Kind())
	if err != nil {
		return nil, err
	}
	return t.values.Find(ctx,
		attribute.WithAssignmentID(a.ID()),
		repository.WithOrderAsc("sort_order"),
		repository.WithOrderAsc("id"),
	)
}

// UpdateSortOrder writes every row's sort order in a single UPDATE using a
// CASE expression keyed by row id.
func (s AssignmentStore) UpdateSortOrder(ctx context.Context, kind attribute.Kind, rows []attribute.AssignedValue) error {
	if len(rows) == 0 {
		return nil
	}
	t, err := s.forKind(kind)
	if err != nil {
		return err
	}

	var expr strings.Builder
	args := make([]any, 0, len(rows)*2)
	ids := make([]int64, len(rows))
	expr.WriteString("CASE id")
	for i, row := range rows {
		expr.WriteString(" WHEN ? THEN ?")
		args = append(args, row.ID(), row.SortOrder())
		ids[i] = row.ID()
	}
	expr.WriteString(" ELSE sort_order END")

	err = t.values.DB(ctx).
		Where("id IN ?", ids).
		Update("sort_order", gorm.Expr(expr.String(), args...)).Error
	if err != nil {
		return fmt.Errorf("update %s sort order: %w", t.values.Label(), err)
	}
	return nil
}

// uniqueIDs drops repeated identifiers, keeping the first occurrence.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
