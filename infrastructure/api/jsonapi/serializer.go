package jsonapi

import (
	"strconv"

	"github.com/helixml/catalog/domain/attribute"
)

// Resource types.
const (
	TypeAssignment     = "assignment"
	TypeAttributeValue = "attribute-value"
)

// AssignmentAttributes are the attributes of an assignment resource.
type AssignmentAttributes struct {
	Kind        string  `json:"kind"`
	EntityID    int64   `json:"entity_id"`
	AttributeID int64   `json:"attribute_id"`
	ValueIDs    []int64 `json:"value_ids"`
}

// ValueAttributes are the attributes of an included attribute value.
type ValueAttributes struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// AssignmentDocument renders an assignment. values supplies the slug and
// name of each assigned value; assigned values missing from it are listed
// by identifier only.
func AssignmentDocument(a attribute.Assignment, attributeID int64, values []attribute.Value) *Document {
	byID := make(map[int64]attribute.Value, len(values))
	for _, v := range values {
		byID[v.ID()] = v
	}

	rows := a.Values()
	ids := make([]int64, len(rows))
	linkage := make([]ResourceIdentifier, len(rows))
	included := make([]*Resource, 0, len(rows))
	for i, row := range rows {
		id := strconv.FormatInt(row.ValueID(), 10)
		ids[i] = row.ValueID()
		linkage[i] = ResourceIdentifier{Type: TypeAttributeValue, ID: id}
		if v, ok := byID[row.ValueID()]; ok {
			included = append(included, &Resource{
				Type: TypeAttributeValue,
				ID:   id,
				Attributes: ValueAttributes{
					Slug:      v.Slug(),
					Name:      v.Name(),
					SortOrder: row.SortOrder(),
				},
			})
		}
	}

	doc := NewSingleResponse(&Resource{
		Type: TypeAssignment,
		ID:   strconv.FormatInt(a.ID(), 10),
		Attributes: AssignmentAttributes{
			Kind:        a.Kind().String(),
			EntityID:    a.EntityID(),
			AttributeID: attributeID,
			ValueIDs:    ids,
		},
		Relationships: Relationships{
			"values": {Data: linkage},
		},
	})
	doc.Included = included
	return doc
}

// TypeAttribute is the resource type of an attribute definition.
const TypeAttribute = "attribute"

// AttributeAttributes are the attributes of an attribute resource.
type AttributeAttributes struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	InputType string `json:"input_type"`
}

// AttributeResource renders an attribute definition.
func AttributeResource(a attribute.Attribute) *Resource {
	return &Resource{
		Type: TypeAttribute,
		ID:   strconv.FormatInt(a.ID(), 10),
		Attributes: AttributeAttributes{
			Slug:      a.Slug(),
			Name:      a.Name(),
			InputType: string(a.InputType()),
		},
	}
}

// ValueResource renders one of an attribute's values with its own sort order.
func ValueResource(v attribute.Value) *Resource {
	return &Resource{
		Type: TypeAttributeValue,
		ID:   strconv.FormatInt(v.ID(), 10),
		Attributes: ValueAttributes{
			Slug:      v.Slug(),
			Name:      v.Name(),
			SortOrder: v.SortOrder(),
		},
	}
}
