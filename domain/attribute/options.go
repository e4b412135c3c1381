package attribute

import "github.com/helixml/catalog/domain/repository"

// WithAttributeID filters by the "attribute_id" column.
func WithAttributeID(id int64) repository.Option {
	return repository.WithCondition("attribute_id", id)
}

// WithScopeID filters by the "scope_id" column.
func WithScopeID(id int64) repository.Option {
	return repository.WithCondition("scope_id", id)
}

// WithEntityID filters by the "entity_id" column.
func WithEntityID(id int64) repository.Option {
	return repository.WithCondition("entity_id", id)
}

// WithLinkID filters by the "link_id" column.
func WithLinkID(id int64) repository.Option {
	return repository.WithCondition("link_id", id)
}

// WithAssignmentID filters by the "assignment_id" column.
func WithAssignmentID(id int64) repository.Option {
	return repository.WithCondition("assignment_id", id)
}

// WithValueIDNotIn excludes rows whose "value_id" is in ids.
func WithValueIDNotIn(ids []int64) repository.Option {
	return repository.WithConditionNotIn("value_id", ids)
}

// WithSlug filters by the "slug" column.
func WithSlug(slug string) repository.Option {
	return repository.WithCondition("slug", slug)
}
