package unorderedlist

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Sorted lists every occurrence of l in ascending order.
func Sorted[T constraints.Ordered](l *List[T]) []T {
	items := l.Items()
	slices.Sort(items)
	return items
}
