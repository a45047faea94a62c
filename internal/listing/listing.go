// Package listing derives the filtered view of a fetched table.
// Filtering is pure: the raw slice is never modified.
package listing

import "strings"

// All is the select value that disables an exact-match filter
const All = "all"

// Predicate reports whether a row stays in the filtered view
type Predicate[T any] func(T) bool

// Result is a fetched table together with its filtered view
type Result[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`    // rows fetched
	Filtered int `json:"filtered"` // rows kept
}

// Filter returns the rows satisfying every non-nil predicate, in order
func Filter[T any](rows []T, preds ...Predicate[T]) []T {
	active := preds[:0:0] // Fresh backing array
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	out := make([]T, 0, len(rows)) // Never aliases rows
next:
	for _, row := range rows {
		for _, p := range active {
			if !p(row) {
				continue next
			}
		}
		out = append(out, row)
	}
	return out
}

// Apply filters rows and wraps them in a Result
func Apply[T any](rows []T, preds ...Predicate[T]) Result[T] {
	items := Filter(rows, preds...)
	return Result[T]{Items: items, Total: len(rows), Filtered: len(items)}
}

// Search keeps rows where any field contains query, ignoring case.
// An empty query disables the predicate.
func Search[T any](query string, fields ...func(T) string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil // Nil predicates are skipped
	}
	return func(row T) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(row)), q) {
				return true
			}
		}
		return false
	}
}

// Match keeps rows whose field equals selected exactly
func Match[T any](selected string, field func(T) string) Predicate[T] {
	if disabled(selected) {
		return nil
	}
	return func(row T) bool { return field(row) == selected }
}

// MatchFold is Match ignoring case
func MatchFold[T any](selected string, field func(T) string) Predicate[T] {
	if disabled(selected) {
		return nil
	}
	return func(row T) bool { return strings.EqualFold(field(row), selected) }
}

// Flag keeps rows whose boolean field is true when selected == on and false
// when selected == off. Any other value disables the predicate.
func Flag[T any](selected, on, off string, field func(T) bool) Predicate[T] {
	switch selected {
	case on:
		return func(row T) bool { return field(row) }
	case off:
		return func(row T) bool { return !field(row) }
	default:
		return nil
	}
}

// Str dereferences an optional column
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func disabled(selected string) bool {
	return selected == "" || selected == All
}
