package utils

// Order picks which end of an insertion-ordered collection an operation
// works from.
type Order uint8

const (
	// DescOrder starts from the newest entry.
	DescOrder Order = iota
	// AscOrder starts from the oldest entry.
	AscOrder
)

func (o Order) Valid() bool {
	return o == DescOrder || o == AscOrder
}

func (o Order) String() string {
	switch o {
	case DescOrder:
		return "desc"
	case AscOrder:
		return "asc"
	default:
		return "unknown"
	}
}

func GetZero[T any]() T {
	var result T
	return result
}
