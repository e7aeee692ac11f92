package orderedmap

import (
	"iter"

	list "github.com/bahlo/generic-list-go"

	"github.com/eddiethedean/unordered-list/utils"
)

type (
	// OrderedMap is a hash map that remembers the order in which keys were
	// first set. Overwriting the value of an existing key keeps its position.
	OrderedMap[K comparable, V any] struct {
		m    map[K]*list.Element[utils.Pair[K, V]]
		list *list.List[utils.Pair[K, V]]
	}

	ForEachFn[K comparable, V any]      func(key K, value V, order int)
	ForEachUntilFn[K comparable, V any] func(key K, value V, order int) bool
)

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return NewOrderedMapWithCapacity[K, V](0)
}

func NewOrderedMapWithCapacity[K comparable, V any](capacity int) *OrderedMap[K, V] {
	if capacity < 0 {
		capacity = 0
	}

	return &OrderedMap[K, V]{
		m:    make(map[K]*list.Element[utils.Pair[K, V]], capacity),
		list: list.New[utils.Pair[K, V]](),
	}
}

// Set is idempotent
func (om *OrderedMap[K, V]) Set(key K, value V) {
	existingEl, found := om.m[key]
	if !found {
		om.m[key] = om.list.PushBack(utils.Pair[K, V]{Key: key, Value: value})
		return
	}

	existingEl.Value.Value = value
}

func (om *OrderedMap[K, V]) SetNX(key K, value V) (added bool) {
	if _, found := om.m[key]; found {
		return false
	}

	om.m[key] = om.list.PushBack(utils.Pair[K, V]{Key: key, Value: value})
	return true
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	el, found := om.m[key]
	if !found {
		return utils.GetZero[V](), false
	}

	return el.Value.Value, true
}

func (om *OrderedMap[K, V]) Get(key K) V {
	v, _ := om.HasGet(key)
	return v
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, found := om.m[key]
	return found
}

func (om *OrderedMap[K, V]) HasRemove(key K) (V, bool) {
	el, exists := om.m[key]
	if !exists {
		return utils.GetZero[V](), false
	}

	delete(om.m, key)
	return om.list.Remove(el).Value, true
}

func (om *OrderedMap[K, V]) Remove(key K) V {
	v, _ := om.HasRemove(key)
	return v
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.m)
}

func (om *OrderedMap[K, V]) Clear() {
	om.m = make(map[K]*list.Element[utils.Pair[K, V]])
	om.list.Init()
}

// Oldest returns the pair that was inserted first.
func (om *OrderedMap[K, V]) Oldest() (utils.Pair[K, V], bool) {
	el := om.list.Front()
	if el == nil {
		return utils.GetZero[utils.Pair[K, V]](), false
	}

	return el.Value, true
}

// Newest returns the pair that was inserted last.
func (om *OrderedMap[K, V]) Newest() (utils.Pair[K, V], bool) {
	el := om.list.Back()
	if el == nil {
		return utils.GetZero[utils.Pair[K, V]](), false
	}

	return el.Value, true
}

func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(om.m))
	for curr := om.list.Front(); curr != nil; curr = curr.Next() {
		keys = append(keys, curr.Value.Key)
	}
	return keys
}

func (om *OrderedMap[K, V]) Pairs() []utils.Pair[K, V] {
	pairs := make([]utils.Pair[K, V], 0, len(om.m))
	for curr := om.list.Front(); curr != nil; curr = curr.Next() {
		pairs = append(pairs, curr.Value)
	}
	return pairs
}

// All yields key value pairs in insertion order. Values may be overwritten
// while ranging, but keys must not be added or removed.
func (om *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for curr := om.list.Front(); curr != nil; curr = curr.Next() {
			if !yield(curr.Value.Key, curr.Value.Value) {
				return
			}
		}
	}
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	order := 0
	for curr := om.list.Front(); curr != nil; curr = curr.Next() {
		f(curr.Value.Key, curr.Value.Value, order)
		order++
	}
}

func (om *OrderedMap[K, V]) ForEachUntil(ff ForEachUntilFn[K, V]) *OrderedMap[K, V] {
	order := 0
	for curr := om.list.Front(); curr != nil; curr = curr.Next() {
		if !ff(curr.Value.Key, curr.Value.Value, order) {
			break
		}
		order++
	}

	return om
}

func (om *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	result := NewOrderedMapWithCapacity[K, V](len(om.m))
	for curr := om.list.Front(); curr != nil; curr = curr.Next() {
		result.Set(curr.Value.Key, curr.Value.Value)
	}

	return result
}
