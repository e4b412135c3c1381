package attribute

import (
	"fmt"
	"sort"
)

// Assignment joins one entity instance to one definition link.
type Assignment struct {
	id       int64
	kind     Kind
	entityID int64
	linkID   int64
	values   []AssignedValue
}

// NewAssignment creates an unsaved assignment.
func NewAssignment(kind Kind, entityID, linkID int64) Assignment {
	return Assignment{kind: kind, entityID: entityID, linkID: linkID}
}

// ReconstructAssignment recreates an assignment from persistence.
func ReconstructAssignment(id int64, kind Kind, entityID, linkID int64) Assignment {
	return Assignment{id: id, kind: kind, entityID: entityID, linkID: linkID}
}

// ID returns the assignment identifier.
func (a Assignment) ID() int64 { return a.id }

// Kind returns the entity kind.
func (a Assignment) Kind() Kind { return a.kind }

// EntityID returns the assigned entity's identifier.
func (a Assignment) EntityID() int64 { return a.entityID }

// LinkID returns the definition link identifier.
func (a Assignment) LinkID() int64 { return a.linkID }

// Values returns the assigned values as last loaded.
func (a Assignment) Values() []AssignedValue {
	result := make([]AssignedValue, len(a.values))
	copy(result, a.values)
	return result
}

// ValueIDs returns the assigned value identifiers in their loaded order.
func (a Assignment) ValueIDs() []int64 {
	ids := make([]int64, len(a.values))
	for i, v := range a.values {
		ids[i] = v.ValueID()
	}
	return ids
}

// WithValues returns a copy of the assignment carrying the given values.
func (a Assignment) WithValues(values []AssignedValue) Assignment {
	a.values = make([]AssignedValue, len(values))
	copy(a.values, values)
	return a
}

// AssignedValue joins an assignment to one attribute value and carries its
// display position.
type AssignedValue struct {
	id           int64
	assignmentID int64
	valueID      int64
	sortOrder    int
}

// NewAssignedValue creates an unsaved assigned value.
func NewAssignedValue(assignmentID, valueID int64) AssignedValue {
	return AssignedValue{assignmentID: assignmentID, valueID: valueID}
}

// ReconstructAssignedValue recreates an assigned value from persistence.
func ReconstructAssignedValue(id, assignmentID, valueID int64, sortOrder int) AssignedValue {
	return AssignedValue{id: id, assignmentID: assignmentID, valueID: valueID, sortOrder: sortOrder}
}

// ID returns the row identifier.
func (v AssignedValue) ID() int64 { return v.id }

// AssignmentID returns the parent assignment.
func (v AssignedValue) AssignmentID() int64 { return v.assignmentID }

// ValueID returns the referenced attribute value.
func (v AssignedValue) ValueID() int64 { return v.valueID }

// SortOrder returns the display position.
func (v AssignedValue) SortOrder() int { return v.sortOrder }

// WithSortOrder returns a copy with the given display position.
func (v AssignedValue) WithSortOrder(order int) AssignedValue {
	v.sortOrder = order
	return v
}

// Reorder sorts rows by the position of their value within valueIDs and
// assigns a dense 0-based sort order. Every row's value must appear in
// valueIDs.
func Reorder(rows []AssignedValue, valueIDs []int64) ([]AssignedValue, error) {
	position := make(map[int64]int, len(valueIDs))
	for i, id := range valueIDs {
		if _, seen := position[id]; !seen {
			position[id] = i
		}
	}

	result := make([]AssignedValue, len(rows))
	copy(result, rows)
	for _, row := range result {
		if _, ok := position[row.ValueID()]; !ok {
			return nil, fmt.Errorf("%w: value %d on assignment %d", ErrValueNotInAssignment, row.ValueID(), row.AssignmentID())
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return position[result[i].ValueID()] < position[result[j].ValueID()]
	})
	for i := range result {
		result[i] = result[i].WithSortOrder(i)
	}
	return result, nil
}

// ForeignValueIDs returns the requested identifiers that are not in owned,
// in request order and without duplicates.
func ForeignValueIDs(requested, owned []int64) []int64 {
	ownedSet := make(map[int64]struct{}, len(owned))
	for _, id := range owned {
		ownedSet[id] = struct{}{}
	}

	var foreign []int64
	seen := make(map[int64]struct{})
	for _, id := range requested {
		if _, ok := ownedSet[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		foreign = append(foreign, id)
	}
	return foreign
}
