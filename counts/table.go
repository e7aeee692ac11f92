// Package counts turns sequences of values into count tables and back.
//
// A Table maps each distinct value to the number of times it occurs. Keys
// keep the order in which they were first counted, so expanding a table is
// deterministic. Counts are always at least one: an update that brings a
// count to zero or below removes the key.
package counts

import (
	"iter"

	"github.com/samber/lo"

	"github.com/eddiethedean/unordered-list/orderedmap"
	"github.com/eddiethedean/unordered-list/utils"
)

type Table[T comparable] struct {
	om *orderedmap.OrderedMap[T, int]
}

// NewTable returns an empty table with room for capacity keys.
func NewTable[T comparable](capacity int) *Table[T] {
	if capacity <= 0 {
		return &Table[T]{om: orderedmap.NewOrderedMap[T, int]()}
	}

	return &Table[T]{
		om: orderedmap.NewOrderedMapWithCapacity[T, int](capacity),
	}
}

// Build counts the occurrences of every distinct value. Keys are laid out in
// the order they first appear in values.
func Build[T comparable](values []T) (*Table[T], error) {
	if err := checkAll(values); err != nil {
		return nil, err
	}

	occurrences := lo.CountValues(values)
	t := NewTable[T](len(occurrences))
	for _, v := range values {
		t.om.SetNX(v, occurrences[v])
	}

	return t, nil
}

// Expand yields every key as many times as it is counted, keys in table
// order, repetitions of one key back to back. The table is read as the
// sequence is consumed; ranging again starts over.
func Expand[T comparable](t *Table[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, n := range t.om.All() {
			for i := 0; i < n; i++ {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Get returns the count of v, zero when v is absent or cannot be a key.
func (t *Table[T]) Get(v T) int {
	if !Hashable(v) {
		return 0
	}
	return t.om.Get(v)
}

func (t *Table[T]) Has(v T) bool {
	return Hashable(v) && t.om.Has(v)
}

// Add changes the count of v by delta and returns the new count. A new key
// goes to the end of the table; a count that drops to zero or below removes
// the key. v must be hashable.
func (t *Table[T]) Add(v T, delta int) int {
	n := t.om.Get(v) + delta
	if n <= 0 {
		t.om.Remove(v)
		return 0
	}

	t.om.Set(v, n)
	return n
}

// Merge adds every count of other into t.
func (t *Table[T]) Merge(other *Table[T]) {
	for _, p := range other.om.Pairs() {
		t.Add(p.Key, p.Value)
	}
}

// Len is the number of distinct keys.
func (t *Table[T]) Len() int {
	return t.om.Len()
}

// Total is the sum of all counts.
func (t *Table[T]) Total() int {
	return lo.Sum(lo.Map(t.om.Pairs(), func(p utils.Pair[T, int], _ int) int {
		return p.Value
	}))
}

func (t *Table[T]) Keys() []T {
	return t.om.Keys()
}

func (t *Table[T]) Pairs() []utils.Pair[T, int] {
	return t.om.Pairs()
}

func (t *Table[T]) Oldest() (T, bool) {
	p, ok := t.om.Oldest()
	return p.Key, ok
}

func (t *Table[T]) Newest() (T, bool) {
	p, ok := t.om.Newest()
	return p.Key, ok
}

// ForEach calls f for every key in table order.
func (t *Table[T]) ForEach(f func(v T, count int)) {
	t.om.ForEach(func(key T, value int, _ int) {
		f(key, value)
	})
}

func (t *Table[T]) Clone() *Table[T] {
	return &Table[T]{om: t.om.Clone()}
}

func (t *Table[T]) Clear() {
	t.om.Clear()
}

// Equal reports whether both tables hold the same keys with the same
// counts. Key order is ignored.
func (t *Table[T]) Equal(other *Table[T]) bool {
	if other == nil || t.om.Len() != other.om.Len() {
		return false
	}

	equal := true
	t.om.ForEachUntil(func(key T, value int, _ int) bool {
		n, ok := other.om.HasGet(key)
		equal = ok && n == value
		return equal
	})

	return equal
}

// Map copies the table into a plain map.
func (t *Table[T]) Map() map[T]int {
	m := make(map[T]int, t.om.Len())
	t.ForEach(func(v T, count int) {
		m[v] = count
	})
	return m
}
