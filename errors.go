package unorderedlist

import (
	"github.com/pkg/errors"

	"github.com/eddiethedean/unordered-list/counts"
)

var (
	ErrValueNotPresent = errors.New("value not present")
	ErrEmpty           = errors.New("pop from empty list")
	ErrUnhashable      = counts.ErrUnhashable
	ErrInvalidOrder    = errors.New("invalid pop order")
)
