package attribute

import "errors"

// Association errors.
var (
	// ErrValueOwnership indicates one or more values do not belong to the attribute.
	ErrValueOwnership = errors.New("values do not belong to the attribute")

	// ErrLinkNotFound indicates the attribute is not linked to the entity's type.
	ErrLinkNotFound = errors.New("attribute is not linked to the entity type")

	// ErrUnsupportedEntity indicates an entity kind outside the supported set.
	ErrUnsupportedEntity = errors.New("unsupported entity")

	// ErrValueNotInAssignment indicates an assigned row whose value is not in
	// the requested value list while recomputing sort order.
	ErrValueNotInAssignment = errors.New("assigned value missing from requested values")
)
