// Package repository defines the query vocabulary shared by every store.
package repository

import (
	"context"
	"fmt"
)

// Option applies a modification to a Query.
type Option func(Query) Query

// Store is the read side every GORM-backed store exposes.
type Store[T any] interface {
	Find(ctx context.Context, options ...Option) ([]T, error)
	FindOne(ctx context.Context, options ...Option) (T, error)
	Exists(ctx context.Context, options ...Option) (bool, error)
	Count(ctx context.Context, options ...Option) (int64, error)
}

// Query holds conditions, ordering, and pagination for store lookups.
type Query struct {
	conditions []Condition
	orders     []Order
	limit      int
	offset     int
}

// Build creates a Query from a set of options.
func Build(options ...Option) Query {
	q := Query{}
	for _, opt := range options {
		q = opt(q)
	}
	return q
}

// Conditions returns the query conditions.
func (q Query) Conditions() []Condition {
	result := make([]Condition, len(q.conditions))
	copy(result, q.conditions)
	return result
}

// Orders returns the ordering specifications.
func (q Query) Orders() []Order {
	result := make([]Order, len(q.orders))
	copy(result, q.orders)
	return result
}

// LimitValue returns the limit (0 means no limit).
func (q Query) LimitValue() int { return q.limit }

// OffsetValue returns the offset.
func (q Query) OffsetValue() int { return q.offset }

// Condition is a single equality, IN or NOT IN predicate.
type Condition struct {
	field string
	value any
	in    bool
	notIn bool
}

// Field returns the column name.
func (c Condition) Field() string { return c.field }

// Value returns the compared value.
func (c Condition) Value() any { return c.value }

// In reports whether the condition is an IN predicate.
func (c Condition) In() bool { return c.in }

// NotIn reports whether the condition is a NOT IN predicate.
func (c Condition) NotIn() bool { return c.notIn }

// String returns a readable representation.
func (c Condition) String() string {
	switch {
	case c.in:
		return fmt.Sprintf("%s IN %v", c.field, c.value)
	case c.notIn:
		return fmt.Sprintf("%s NOT IN %v", c.field, c.value)
	default:
		return fmt.Sprintf("%s = %v", c.field, c.value)
	}
}

// Order is a sort specification.
type Order struct {
	field     string
	ascending bool
}

// Field returns the order column.
func (o Order) Field() string { return o.field }

// Ascending returns true for ASC, false for DESC.
func (o Order) Ascending() bool { return o.ascending }

// WithCondition adds a field = value condition.
func WithCondition(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, value: value})
		return q
	}
}

// WithConditionIn adds a field IN (values) condition.
func WithConditionIn(field string, values any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, value: values, in: true})
		return q
	}
}

// WithConditionNotIn adds a field NOT IN (values) condition.
func WithConditionNotIn(field string, values any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, value: values, notIn: true})
		return q
	}
}

// WithID filters by the "id" column.
func WithID(id int64) Option {
	return WithCondition("id", id)
}

// WithIDIn filters by the "id" column using IN.
func WithIDIn(ids []int64) Option {
	return WithConditionIn("id", ids)
}

// WithLimit sets the maximum number of results.
func WithLimit(n int) Option {
	return func(q Query) Query {
		q.limit = n
		return q
	}
}

// WithOffset sets the result offset.
func WithOffset(n int) Option {
	return func(q Query) Query {
		q.offset = n
		return q
	}
}

// WithOrderAsc adds ascending ordering on a field.
func WithOrderAsc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: true})
		return q
	}
}

// WithOrderDesc adds descending ordering on a field.
func WithOrderDesc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: false})
		return q
	}
}

// WithPagination returns limit and offset options for a page.
func WithPagination(limit, offset int) []Option {
	return []Option{WithLimit(limit), WithOffset(offset)}
}
