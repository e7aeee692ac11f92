// Package unorderedlist provides List, a multiset: it behaves like a list
// whose order does not matter, or like a set that remembers duplicates.
//
//	l := unorderedlist.Of(3, 2, 3, 1)
//	l.Count(3)                                  // 2
//	l.Equal(unorderedlist.Slice[int]{3, 3, 1, 2}) // true
//	diff, _ := l.Subtract(unorderedlist.Slice[int]{1, 3})
//	diff.Items()                                // [3 2]
//
// Values must be hashable. Generic code enforces that at compile time for
// most types; values hidden behind an interface type, and float or complex
// NaNs, are checked at runtime and rejected with ErrUnhashable.
//
// Distinct values are kept in the order they were first added. That order
// drives Items, iteration and the value Pop picks, but it plays no part in
// equality. A List is not safe for concurrent use.
package unorderedlist

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/eddiethedean/unordered-list/counts"
	"github.com/eddiethedean/unordered-list/maputils"
	"github.com/eddiethedean/unordered-list/set"
	"github.com/eddiethedean/unordered-list/utils"
)

// List is an unordered collection of values that keeps duplicates. It stores
// one count per distinct value rather than every occurrence. The zero value
// is not usable; build one with New or Of.
type List[T comparable] struct {
	counts *counts.Table[T]
	cfg    config
}

var _ Source[int] = (*List[int])(nil)

// New builds a List holding values. Options are applied in order, later ones
// overriding earlier ones: WithCapacity presizes the count table and
// WithPopOrder picks which end Pop takes from. New fails with ErrInvalidOrder
// when the pop order is not one of utils.DescOrder or utils.AscOrder, and
// with ErrUnhashable when any value cannot be used as a map key. values is
// not retained.
func New[T comparable](values []T, options ...Option) (*List[T], error) {
	cfg := defaultConfig()
	for _, o := range options {
		o(&cfg)
	}

	if !cfg.popOrder.Valid() {
		return nil, errors.Wrapf(ErrInvalidOrder, "%d", cfg.popOrder)
	}

	table, err := counts.Build(values)
	if err != nil {
		return nil, err
	}

	if cfg.capacity > table.Len() {
		sized := counts.NewTable[T](cfg.capacity)
		sized.Merge(table)
		table = sized
	}

	return &List[T]{counts: table, cfg: cfg}, nil
}

// Of is like New with default options, but panics on unhashable values.
func Of[T comparable](values ...T) *List[T] {
	l, err := New(values)
	if err != nil {
		panic(err)
	}
	return l
}

// Len is the number of values, duplicates included.
func (l *List[T]) Len() int {
	return l.counts.Total()
}

// Distinct is the number of distinct values.
func (l *List[T]) Distinct() int {
	return l.counts.Len()
}

// Contains reports whether v occurs at least once. A value that cannot be a
// key is never contained.
func (l *List[T]) Contains(v T) bool {
	return l.counts.Has(v)
}

// Count returns how many times v occurs, zero when it does not.
func (l *List[T]) Count(v T) int {
	return l.counts.Get(v)
}

// Append adds one occurrence of v. It fails with ErrUnhashable, leaving l
// unchanged, when v cannot be used as a map key.
func (l *List[T]) Append(v T) error {
	if err := counts.CheckHashable(v); err != nil {
		return err
	}

	l.counts.Add(v, 1)
	return nil
}

// Insert is Append: a List has no positions to insert at.
func (l *List[T]) Insert(v T) error {
	return l.Append(v)
}

// Extend appends every value. Nothing is added if any value is unhashable.
func (l *List[T]) Extend(values []T) error {
	table, err := counts.Build(values)
	if err != nil {
		return err
	}

	l.counts.Merge(table)
	return nil
}

// Remove drops one occurrence of v.
func (l *List[T]) Remove(v T) error {
	if !l.counts.Has(v) {
		if err := counts.CheckHashable(v); err != nil {
			return err
		}
		return errors.Wrapf(ErrValueNotPresent, "%v", v)
	}

	l.counts.Add(v, -1)
	return nil
}

// Pop removes one occurrence of a value and returns it. With the default
// pop order that value is the last distinct value in iteration order.
func (l *List[T]) Pop() (T, error) {
	var (
		v  T
		ok bool
	)

	switch l.cfg.popOrder {
	case utils.AscOrder:
		v, ok = l.counts.Oldest()
	default:
		v, ok = l.counts.Newest()
	}

	if !ok {
		return utils.GetZero[T](), ErrEmpty
	}

	l.counts.Add(v, -1)
	return v, nil
}

// PopValue removes one occurrence of v and returns it.
func (l *List[T]) PopValue(v T) (T, error) {
	if l.counts.Len() == 0 {
		return utils.GetZero[T](), ErrEmpty
	}

	if err := l.Remove(v); err != nil {
		return utils.GetZero[T](), err
	}

	return v, nil
}

// Clear removes every value. Options are kept.
func (l *List[T]) Clear() {
	l.counts.Clear()
}

// Copy returns an independent List with the same values, order and options.
func (l *List[T]) Copy() *List[T] {
	return &List[T]{counts: l.counts.Clone(), cfg: l.cfg}
}

// Equal reports whether other holds exactly the same values with the same
// multiplicities. Order is ignored. An other that cannot be counted is never
// equal.
func (l *List[T]) Equal(other Source[T]) bool {
	table, err := tableOf(other)
	if err != nil {
		return false
	}

	return l.counts.Equal(table)
}

// Add returns a new List holding the values of both l and other.
func (l *List[T]) Add(other Source[T]) (*List[T], error) {
	table, err := tableOf(other)
	if err != nil {
		return nil, err
	}

	out := l.Copy()
	out.counts.Merge(table)
	return out, nil
}

// Subtract returns a new List with the values of other taken out of l. Every
// distinct value of other must be present in l; a value present fewer times
// than other holds it simply disappears. l is never modified.
func (l *List[T]) Subtract(other Source[T]) (*List[T], error) {
	table, err := tableOf(other)
	if err != nil {
		return nil, err
	}

	out := l.Copy()
	for _, p := range table.Pairs() {
		if !out.counts.Has(p.Key) {
			return nil, errors.Wrapf(ErrValueNotPresent, "%v cannot be subtracted", p.Key)
		}
		out.counts.Add(p.Key, -p.Value)
	}

	return out, nil
}

// Intersect returns the distinct values found in both l and other, in l's
// order. Multiplicities are ignored.
func (l *List[T]) Intersect(other Source[T]) (*set.OrderedSet[T], error) {
	table, err := tableOf(other)
	if err != nil {
		return nil, err
	}

	return set.NewOrderedSet(lo.Intersect(table.Keys(), l.counts.Keys())...), nil
}

// Union returns the distinct values found in l or other: l's values first,
// then the ones only other has.
func (l *List[T]) Union(other Source[T]) (*set.OrderedSet[T], error) {
	table, err := tableOf(other)
	if err != nil {
		return nil, err
	}

	return set.NewOrderedSet(lo.Union(l.counts.Keys(), table.Keys())...), nil
}

// Multiply returns every distinct value mapped to its count times n. The
// result is a plain map, not a List.
func (l *List[T]) Multiply(n int) map[T]int {
	return maputils.Transform(l.counts.Map(), func(_ T, count int) int {
		return count * n
	})
}

// Items lists every occurrence, repetitions of a value next to each other,
// distinct values in iteration order.
func (l *List[T]) Items() []T {
	items := make([]T, 0, l.Len())
	for v := range counts.Expand(l.counts) {
		items = append(items, v)
	}
	return items
}

// Set returns the distinct values.
func (l *List[T]) Set() *set.OrderedSet[T] {
	return set.NewOrderedSet(l.counts.Keys()...)
}

// Counts returns a copy of the count table.
func (l *List[T]) Counts() map[T]int {
	return l.counts.Map()
}

// Values yields every occurrence like Items does, without building a slice.
// The List must not be modified while ranging.
func (l *List[T]) Values() iter.Seq[T] {
	return counts.Expand(l.counts)
}

func (l *List[T]) String() string {
	return fmt.Sprintf("List(%v)", l.Items())
}
