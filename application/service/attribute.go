package service

import (
	"context"
	"fmt"

	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/domain/repository"
)

// InstanceResolver loads a catalog entity as an attribute.Instance.
type InstanceResolver interface {
	Instance(ctx context.Context, kind attribute.Kind, id int64) (attribute.Instance, error)
}

// Attribute associates ordered attribute values with catalog entities.
// Embeds Collection for Find/FindOne/Count over attributes.
//
// None of its methods open a transaction. Associate issues several writes;
// callers that need them to apply atomically run it inside
// database.WithTransaction.
type Attribute struct {
	repository.Collection[attribute.Attribute]
	attributes  attribute.AttributeStore
	links       attribute.LinkStore
	assignments attribute.AssignmentStore
	instances   InstanceResolver
}

// NewAttribute creates a new Attribute service.
func NewAttribute(
	attributes attribute.AttributeStore,
	links attribute.LinkStore,
	assignments attribute.AssignmentStore,
	instances InstanceResolver,
) *Attribute {
	return &Attribute{
		Collection:  repository.NewCollection[attribute.Attribute](attributes),
		attributes:  attributes,
		links:       links,
		assignments: assignments,
		instances:   instances,
	}
}

// Get returns the attribute with the given id.
func (s *Attribute) Get(ctx context.Context, id int64) (attribute.Attribute, error) {
	return s.attributes.Get(ctx, id)
}

// Values returns the attribute's values in their own sort order.
func (s *Attribute) Values(ctx context.Context, attributeID int64) ([]attribute.Value, error) {
	return s.attributes.Values(ctx, attributeID)
}

// ValidateOwnership returns attribute.ErrValueOwnership when any of valueIDs
// does not belong to attr.
func (s *Attribute) ValidateOwnership(ctx context.Context, attr attribute.Attribute, valueIDs []int64) error {
	owned, err := s.attributes.ValueIDs(ctx, attr.ID())
	if err != nil {
		return err
	}
	if foreign := attribute.ForeignValueIDs(valueIDs, owned); len(foreign) > 0 {
		return fmt.Errorf("%w: %v not owned by attribute %q", attribute.ErrValueOwnership, foreign, attr.Slug())
	}
	return nil
}

// Associate makes values the assigned values of attr on instance, displayed
// in the order given. It validates ownership, resolves the definition link
// for the instance's kind, reuses or creates the assignment, replaces its
// value set and rewrites its sort order.
//
// Nothing is written when ownership fails or no link exists.
func (s *Attribute) Associate(ctx context.Context, instance attribute.Instance, attr attribute.Attribute, values []attribute.Value) (attribute.Assignment, error) {
	return s.associate(ctx, instance, attr, attribute.ValueIDs(values))
}

// AssociateByID loads the entity, attribute and values by identifier and
// runs Associate.
func (s *Attribute) AssociateByID(ctx context.Context, kind attribute.Kind, entityID, attributeID int64, valueIDs []int64) (attribute.Assignment, error) {
	instance, err := s.instances.Instance(ctx, kind, entityID)
	if err != nil {
		return attribute.Assignment{}, err
	}
	attr, err := s.attributes.Get(ctx, attributeID)
	if err != nil {
		return attribute.Assignment{}, fmt.Errorf("attribute %d: %w", attributeID, err)
	}
	return s.associate(ctx, instance, attr, valueIDs)
}

func (s *Attribute) associate(ctx context.Context, instance attribute.Instance, attr attribute.Attribute, valueIDs []int64) (attribute.Assignment, error) {
	if err := s.ValidateOwnership(ctx, attr, valueIDs); err != nil {
		return attribute.Assignment{}, err
	}

	link, err := s.link(ctx, instance, attr.ID())
	if err != nil {
		return attribute.Assignment{}, err
	}

	assignment, err := s.assignments.GetOrCreate(ctx, instance.Kind(), instance.ID(), link.ID())
	if err != nil {
		return attribute.Assignment{}, err
	}

	if err := s.ReplaceValues(ctx, assignment, valueIDs); err != nil {
		return attribute.Assignment{}, err
	}

	ordered, err := s.SortValues(ctx, assignment, valueIDs)
	if err != nil {
		return attribute.Assignment{}, err
	}
	return assignment.WithValues(ordered), nil
}

// ReplaceValues sets the assignment's value membership to exactly valueIDs.
func (s *Attribute) ReplaceValues(ctx context.Context, a attribute.Assignment, valueIDs []int64) error {
	return s.assignments.ReplaceValues(ctx, a, valueIDs)
}

// SortValues rewrites the sort order of the assignment's rows to each
// value's position in valueIDs and returns the rows in that order. Every
// assigned value must appear in valueIDs.
func (s *Attribute) SortValues(ctx context.Context, a attribute.Assignment, valueIDs []int64) ([]attribute.AssignedValue, error) {
	rows, err := s.assignments.AssignedValues(ctx, a)
	if err != nil {
		return nil, err
	}
	ordered, err := attribute.Reorder(rows, valueIDs)
	if err != nil {
		return nil, err
	}
	if err := s.assignments.UpdateSortOrder(ctx, a.Kind(), ordered); err != nil {
		return nil, err
	}
	return ordered, nil
}

// Assigned returns the assignment of attributeID on instance with its values
// in display order.
func (s *Attribute) Assigned(ctx context.Context, instance attribute.Instance, attributeID int64) (attribute.Assignment, error) {
	link, err := s.link(ctx, instance, attributeID)
	if err != nil {
		return attribute.Assignment{}, err
	}
	assignment, err := s.assignments.Find(ctx, instance.Kind(), instance.ID(), link.ID())
	if err != nil {
		return attribute.Assignment{}, err
	}
	rows, err := s.assignments.AssignedValues(ctx, assignment)
	if err != nil {
		return attribute.Assignment{}, err
	}
	return assignment.WithValues(rows), nil
}

// AssignedByID is Assigned for an entity identified by kind and id.
func (s *Attribute) AssignedByID(ctx context.Context, kind attribute.Kind, entityID, attributeID int64) (attribute.Assignment, error) {
	instance, err := s.instances.Instance(ctx, kind, entityID)
	if err != nil {
		return attribute.Assignment{}, err
	}
	return s.Assigned(ctx, instance, attributeID)
}

func (s *Attribute) link(ctx context.Context, instance attribute.Instance, attributeID int64) (attribute.Link, error) {
	if !instance.Supported() {
		return attribute.Link{}, fmt.Errorf("%w: %q", attribute.ErrUnsupportedEntity, instance.Kind())
	}
	return s.links.Link(ctx, instance.Kind(), instance.ScopeID(), attributeID)
}
