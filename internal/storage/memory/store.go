package memory

import (
	"slices"
)

// Store is an ordered in-memory list of records. Position is the only
// identity a record has. Store is not safe for concurrent use.
type Store[T any] struct {
	items []T
}

// NewStore creates a Store holding a copy of items.
func NewStore[T any](items ...T) *Store[T] {
	return &Store[T]{items: slices.Clone(items)}
}

// Append adds item at the end of the list.
func (s *Store[T]) Append(item T) {
	s.items = append(s.items, item)
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// All returns a copy of the records in their current order.
func (s *Store[T]) All() []T {
	return slices.Clone(s.items)
}

// Filter returns, in order, every record for which match reports true.
// The result is never nil.
func (s *Store[T]) Filter(match func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range s.items {
		if match(item) {
			result = append(result, item)
		}
	}
	return result
}

// SortStable reorders the records in place. Records that compare equal keep
// their relative order.
func (s *Store[T]) SortStable(cmp func(a, b T) int) {
	slices.SortStableFunc(s.items, cmp)
}

// Replace swaps the whole list for a copy of items.
func (s *Store[T]) Replace(items []T) {
	s.items = slices.Clone(items)
}
