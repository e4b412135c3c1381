// Package dto holds request bodies of the v1 API.
package dto

// AssignmentRequest is the body of PUT /entities/{kind}/{id}/attributes/{attributeID}.
// ValueIDs is a pointer so an absent field can be told apart from an empty list.
type AssignmentRequest struct {
	ValueIDs *[]int64 `json:"value_ids"`
}
