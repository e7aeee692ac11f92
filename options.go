package unorderedlist

import "github.com/eddiethedean/unordered-list/utils"

type (
	config struct {
		capacity int
		popOrder utils.Order
	}

	Option func(cfg *config)
)

func defaultConfig() config {
	return config{popOrder: utils.DescOrder}
}

// WithCapacity pre-sizes the table for n distinct values.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		cfg.capacity = n
	}
}

// WithPopOrder decides which value Pop takes. utils.DescOrder, the default,
// takes the value whose first occurrence was added last. utils.AscOrder takes
// the one added first.
func WithPopOrder(o utils.Order) Option {
	return func(cfg *config) {
		cfg.popOrder = o
	}
}
