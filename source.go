package unorderedlist

import (
	"github.com/eddiethedean/unordered-list/counts"
	"github.com/eddiethedean/unordered-list/set"
)

type (
	// Source is anything that can be listed as a flat sequence of values.
	// *List, *set.OrderedSet and Slice all qualify.
	Source[T comparable] interface {
		Items() []T
	}

	// Slice adapts a plain slice to Source.
	Slice[T comparable] []T
)

func (s Slice[T]) Items() []T {
	return s
}

// tableOf counts src. A *List hands out its own table, which callers must
// only read. A nil operand, typed or not, counts as empty.
func tableOf[T comparable](src Source[T]) (*counts.Table[T], error) {
	switch s := src.(type) {
	case nil:
		return counts.NewTable[T](0), nil
	case *List[T]:
		if s == nil {
			return counts.NewTable[T](0), nil
		}
		return s.counts, nil
	case *set.OrderedSet[T]:
		if s == nil {
			return counts.NewTable[T](0), nil
		}
	}

	return counts.Build(src.Items())
}
