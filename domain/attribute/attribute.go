package attribute

// InputType describes how an attribute's values are entered.
type InputType string

// InputType values.
const (
	InputDropdown    InputType = "dropdown"
	InputMultiselect InputType = "multiselect"
	InputSwatch      InputType = "swatch"
	InputBoolean     InputType = "boolean"
)

// Attribute is a named, typed field definition that owns a set of values.
type Attribute struct {
	id        int64
	slug      string
	name      string
	inputType InputType
}

// NewAttribute creates an unsaved attribute.
func NewAttribute(slug, name string, inputType InputType) Attribute {
	if inputType == "" {
		inputType = InputDropdown
	}
	return Attribute{slug: slug, name: name, inputType: inputType}
}

// ReconstructAttribute recreates an attribute from persistence.
func ReconstructAttribute(id int64, slug, name string, inputType InputType) Attribute {
	return Attribute{id: id, slug: slug, name: name, inputType: inputType}
}

// ID returns the attribute identifier.
func (a Attribute) ID() int64 { return a.id }

// Slug returns the attribute slug.
func (a Attribute) Slug() string { return a.slug }

// Name returns the display name.
func (a Attribute) Name() string { return a.name }

// InputType returns the input type.
func (a Attribute) InputType() InputType { return a.inputType }

// Value is one concrete value belonging to an attribute.
type Value struct {
	id          int64
	attributeID int64
	slug        string
	name        string
	sortOrder   int
}

// NewValue creates an unsaved value for the given attribute.
func NewValue(attributeID int64, slug, name string, sortOrder int) Value {
	return Value{attributeID: attributeID, slug: slug, name: name, sortOrder: sortOrder}
}

// ReconstructValue recreates a value from persistence.
func ReconstructValue(id, attributeID int64, slug, name string, sortOrder int) Value {
	return Value{id: id, attributeID: attributeID, slug: slug, name: name, sortOrder: sortOrder}
}

// ID returns the value identifier.
func (v Value) ID() int64 { return v.id }

// AttributeID returns the owning attribute's identifier.
func (v Value) AttributeID() int64 { return v.attributeID }

// Slug returns the value slug.
func (v Value) Slug() string { return v.slug }

// Name returns the display name.
func (v Value) Name() string { return v.name }

// SortOrder returns the value's position within its attribute.
func (v Value) SortOrder() int { return v.sortOrder }

// ValueIDs returns the identifiers of values, preserving order.
func ValueIDs(values []Value) []int64 {
	ids := make([]int64, len(values))
	for i, v := range values {
		ids[i] = v.ID()
	}
	return ids
}
