package rng

import (
	"errors"
	"fmt"
)

// ErrEmptyTable is returned when selecting from a table with no entries
// or with no positive weight.
var ErrEmptyTable = errors.New("weighted table is empty")

// Weighted pairs an item with its selection weight.
type Weighted[T any] struct {
	Item   T
	Weight int
}

// Select picks one item with probability weight/total.
//
// Draws r in [0, total) and walks entries in declared order, subtracting each
// weight; the first entry that takes r below zero wins. The last entry is
// returned if the walk falls through.
func Select[T any](src Source, entries []Weighted[T]) (T, error) {
	var zero T
	if len(entries) == 0 {
		return zero, ErrEmptyTable
	}

	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	if total <= 0 {
		return zero, fmt.Errorf("total weight %d: %w", total, ErrEmptyTable)
	}

	r := src.IntN(total)
	for _, e := range entries {
		r -= e.Weight
		if r < 0 {
			return e.Item, nil
		}
	}

	return entries[len(entries)-1].Item, nil
}
