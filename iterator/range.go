package iterator

import (
	"math"

	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*Range[int])(nil)

// Range iterates the integers of [start, end) in ascending order.
type Range[T constraints.Integer] struct {
	current T
	end     T
}

// NewRange returns a Range from start (inclusive) to end (exclusive).
// When start >= end the range is empty.
func NewRange[T constraints.Integer](start, end T) *Range[T] {
	if start > end {
		start = end
	}
	return &Range[T]{current: start, end: end}
}

func (r *Range[T]) HasNext() bool {
	return r.current < r.end
}

func (r *Range[T]) Next() (T, error) {
	if !r.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	value := r.current
	r.current++
	return value, nil
}

// Len returns the number of values left, saturated at math.MaxInt.
func (r *Range[T]) Len() int {
	if r.current >= r.end {
		return 0
	}
	// end-current always fits in uint64, even when it overflows T.
	n := uint64(r.end) - uint64(r.current)
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
