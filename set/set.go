package set

// Set is a collection of distinct values.
type Set[T comparable] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Items() []T
	Len() int
	InsertSet(sourceSet Set[T]) (modified bool)
}
