package unorderedlist

import (
	"github.com/eddiethedean/unordered-list/utils"
)

// Iterator walks every occurrence of a List once. It reads a snapshot of the
// counts taken by List.Iterator, so changes to the List afterwards are not
// seen. An exhausted Iterator stays exhausted.
type Iterator[T comparable] struct {
	pairs []utils.Pair[T, int]
	pos   int
	seen  int
}

func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{pairs: l.counts.Pairs()}
}

// Next returns the next occurrence. ok is false once every occurrence has
// been returned.
func (it *Iterator[T]) Next() (v T, ok bool) {
	for it.pos < len(it.pairs) {
		p := it.pairs[it.pos]
		if it.seen < p.Value {
			it.seen++
			return p.Key, true
		}
		it.pos++
		it.seen = 0
	}

	return utils.GetZero[T](), false
}

// Remaining is the number of occurrences Next has yet to return.
func (it *Iterator[T]) Remaining() int {
	if it.pos >= len(it.pairs) {
		return 0
	}

	n := it.pairs[it.pos].Value - it.seen
	for _, p := range it.pairs[it.pos+1:] {
		n += p.Value
	}
	return n
}
