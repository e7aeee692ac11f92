package set

import (
	"iter"

	list "github.com/bahlo/generic-list-go"
)

// OrderedSet keeps its items in the order they were first inserted.
type OrderedSet[T comparable] struct {
	m    map[T]*list.Element[T]
	list *list.List[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		m:    make(map[T]*list.Element[T], len(items)),
		list: list.New[T](),
	}
	s.InsertSlice(items)
	return s
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = s.list.PushBack(item)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) Clear() {
	s.m = make(map[T]*list.Element[T])
	s.list.Init()
}

func (s *OrderedSet[T]) Remove(item T) bool {
	if el, found := s.m[item]; found {
		delete(s.m, item)
		s.list.Remove(el)
		return true
	}

	return false
}

// Items lists the items in insertion order. A nil set has none.
func (s *OrderedSet[T]) Items() []T {
	if s == nil {
		return nil
	}

	items := make([]T, 0, len(s.m))
	for curr := s.list.Front(); curr != nil; curr = curr.Next() {
		items = append(items, curr.Value)
	}
	return items
}

// All yields the items in insertion order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := s.list.Front(); curr != nil; curr = curr.Next() {
			if !yield(curr.Value) {
				return
			}
		}
	}
}

func (s *OrderedSet[T]) Has(item T) bool {
	if s == nil {
		return false
	}
	_, ok := s.m[item]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	return s.InsertSlice(sourceSet.Items())
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

// Equal reports whether both sets hold the same items, in any order.
func (s *OrderedSet[T]) Equal(other Set[T]) bool {
	if other == nil || s.Len() != other.Len() {
		return false
	}

	for item := range s.m {
		if !other.Has(item) {
			return false
		}
	}

	return true
}
