// Package store is the table-oriented client the console issues every query through.
package store

import (
	"context" // Request-scoped queries
	"errors"  // Not-found translation

	"github.com/google/uuid" // Primary keys
	"gorm.io/gorm"           // GORM ORM library
	"gorm.io/gorm/clause"    // Quoted column filters
)

// ErrNotFound is returned when no row matches the requested key
var ErrNotFound = errors.New("record not found")

// Cond is an equality filter on a single column
type Cond struct {
	Column string
	Value  any
}

// Eq builds a Cond
func Eq(column string, value any) Cond {
	return Cond{Column: column, Value: value}
}

// Preload joins an association, optionally restricted to some columns.
// Columns must include the association's primary key.
type Preload struct {
	Assoc   string
	Columns []string
}

// Query describes a select: filters, ordering, limit, joins and projection
type Query struct {
	Where    []Cond
	Order    string
	Limit    int
	Preloads []Preload
	Columns  []string
}

// Table is a typed handle on one table
type Table[T any] struct {
	db *gorm.DB
}

// NewTable returns a Table for the model T
func NewTable[T any](db *gorm.DB) *Table[T] {
	return &Table[T]{db: db}
}

func (t *Table[T]) scoped(ctx context.Context, q Query) *gorm.DB {
	tx := t.db.WithContext(ctx).Model(new(T)) // Every query carries the request deadline
	for _, c := range q.Where {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: c.Column}, Value: c.Value}) // Column name is quoted
	}
	for _, p := range q.Preloads {
		if len(p.Columns) == 0 {
			tx = tx.Preload(p.Assoc)
			continue
		}
		cols := p.Columns
		tx = tx.Preload(p.Assoc, func(db *gorm.DB) *gorm.DB { return db.Select(cols) }) // Projected join
	}
	if len(q.Columns) > 0 {
		tx = tx.Select(q.Columns)
	}
	if q.Order != "" {
		tx = tx.Order(q.Order)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	return tx
}

// Select returns every row matching q
func (t *Table[T]) Select(ctx context.Context, q Query) ([]T, error) {
	rows := make([]T, 0) // Empty tables encode as []
	if err := t.scoped(ctx, q).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// First returns the first row matching q or ErrNotFound
func (t *Table[T]) First(ctx context.Context, q Query) (*T, error) {
	var row T
	err := t.scoped(ctx, q).Take(&row).Error // No implicit ordering
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound // Callers match on store.ErrNotFound only
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Get loads one row by primary key
func (t *Table[T]) Get(ctx context.Context, id uuid.UUID, preloads ...Preload) (*T, error) {
	return t.First(ctx, Query{Where: []Cond{Eq("id", id)}, Preloads: preloads})
}

// Count returns the number of matching rows without fetching them
func (t *Table[T]) Count(ctx context.Context, where ...Cond) (int64, error) {
	var n int64
	err := t.scoped(ctx, Query{Where: where}).Count(&n).Error // SELECT count(*)
	return n, err
}

// Insert creates a row
func (t *Table[T]) Insert(ctx context.Context, row *T) error {
	return t.db.WithContext(ctx).Create(row).Error // BeforeCreate assigns the id
}

// Update writes the given columns on the row with the given id
func (t *Table[T]) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return t.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields).Error // Map keys are column names
}

// Delete permanently removes one row, returning ErrNotFound when nothing matched
func (t *Table[T]) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := t.DeleteWhere(ctx, Eq("id", id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound // Nothing matched the id
	}
	return nil
}

// DeleteWhere permanently removes every row matching c
func (t *Table[T]) DeleteWhere(ctx context.Context, c Cond) (int64, error) {
	res := t.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: c.Column}, Value: c.Value}).
		Delete(new(T))
	return res.RowsAffected, res.Error // Rows removed
}
