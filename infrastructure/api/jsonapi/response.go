// Package jsonapi provides JSON:API document types for API responses.
package jsonapi

// MediaType is the content type of API responses.
const MediaType = "application/vnd.api+json"

// Document represents a JSON:API top-level document.
// See: https://jsonapi.org/format/#document-structure
type Document struct {
	Data     any         `json:"data,omitempty"`
	Meta     Meta        `json:"meta,omitempty"`
	Links    *Links      `json:"links,omitempty"`
	Included []*Resource `json:"included,omitempty"`
	Errors   []Error     `json:"errors,omitempty"`
}

// Meta holds non-standard meta-information about a document.
type Meta map[string]any

// Links holds document-level links.
type Links struct {
	Self  string `json:"self,omitempty"`
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// Resource represents a JSON:API resource object.
type Resource struct {
	Type          string        `json:"type"`
	ID            string        `json:"id"`
	Attributes    any           `json:"attributes,omitempty"`
	Relationships Relationships `json:"relationships,omitempty"`
}

// Relationships maps relationship names to their data.
type Relationships map[string]Relationship

// Relationship holds a to-one or to-many linkage.
type Relationship struct {
	Data any `json:"data"`
}

// ResourceIdentifier identifies a resource without its attributes.
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Error represents a JSON:API error object.
// See: https://jsonapi.org/format/#error-objects
type Error struct {
	Status string       `json:"status,omitempty"`
	Code   string       `json:"code,omitempty"`
	Title  string       `json:"title,omitempty"`
	Detail string       `json:"detail,omitempty"`
	Source *ErrorSource `json:"source,omitempty"`
}

// ErrorSource points at the part of the request that caused an error.
type ErrorSource struct {
	Pointer   string `json:"pointer,omitempty"`
	Parameter string `json:"parameter,omitempty"`
}

// NewSingleResponse creates a document with one primary resource.
func NewSingleResponse(resource *Resource) *Document {
	return &Document{Data: resource}
}

// NewListResponse creates a document with a list of primary resources.
func NewListResponse(resources []*Resource) *Document {
	if resources == nil {
		resources = []*Resource{}
	}
	return &Document{Data: resources}
}

// NewErrorResponse creates a document with errors.
func NewErrorResponse(errors ...Error) *Document {
	return &Document{Errors: errors}
}

// NewError creates an error with status, title and detail.
func NewError(status, title, detail string) Error {
	return Error{Status: status, Title: title, Detail: detail}
}
