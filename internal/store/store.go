// Package store is a small query-builder style client for a relational
// table: select, insert, update and delete with equality and range filters.
package store

import (
	"context"
	"errors"
)

var (
	// ErrUnfiltered is returned by Update and Delete when no filter is given.
	ErrUnfiltered = errors.New("update and delete require at least one filter")
	// ErrNoFields is returned by Update when there is nothing to write.
	ErrNoFields = errors.New("update requires at least one field")
	// ErrInvalidValue is returned when a value cannot be interpreted
	// as the column's type, e.g. a malformed uuid.
	ErrInvalidValue = errors.New("invalid value for column")
	// ErrNullValue is returned when a write puts null into a column
	// that does not accept it.
	ErrNullValue = errors.New("null value in not-null column")
)

// Row is a single record keyed by column name.
type Row map[string]any

type Table interface {
	// Select returns the given columns of every row matching the options.
	// No columns means all of them.
	Select(ctx context.Context, columns []string, opts ...Option) ([]Row, error)

	// Insert stores the record and returns the stored row, including
	// the columns filled by the store.
	Insert(ctx context.Context, record Row) ([]Row, error)

	// Update writes fields to every matching row and returns the
	// updated rows. It returns ErrUnfiltered without filters.
	Update(ctx context.Context, fields Row, opts ...Option) ([]Row, error)

	// Delete removes every matching row and returns the removed rows.
	// It returns ErrUnfiltered without filters.
	Delete(ctx context.Context, opts ...Option) ([]Row, error)
}

type Op string

const (
	OpEq  Op = "="
	OpGte Op = ">="
	OpLte Op = "<="
)

type Filter struct {
	Column string
	Op     Op
	Value  any
}

type Order struct {
	Column string
	Desc   bool
}

type query struct {
	filters []Filter
	orders  []Order
}

type Option func(*query)

func Eq(column string, value any) Option {
	return where(column, OpEq, value)
}

func Gte(column string, value any) Option {
	return where(column, OpGte, value)
}

func Lte(column string, value any) Option {
	return where(column, OpLte, value)
}

// OrderBy sorts selected rows; later calls break ties of earlier ones.
func OrderBy(column string, desc bool) Option {
	return func(q *query) {
		q.orders = append(q.orders, Order{Column: column, Desc: desc})
	}
}

func where(column string, op Op, value any) Option {
	return func(q *query) {
		q.filters = append(q.filters, Filter{Column: column, Op: op, Value: value})
	}
}

func buildQuery(opts []Option) query {
	var q query
	for _, opt := range opts {
		opt(&q)
	}
	return q
}
