package iterator

var _ Iterator[int] = (*SliceIter[int])(nil)

// Slice returns an iterator over the elements of slice.
func Slice[T any](slice []T) *SliceIter[T] {
	return &SliceIter[T]{Slice: slice}
}

type SliceIter[T any] struct {
	Slice []T

	index int
}

func (i *SliceIter[T]) HasNext() bool {
	return i.index < len(i.Slice)
}

func (i *SliceIter[T]) Next() (T, error) {
	if !i.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	value := i.Slice[i.index]
	i.index++
	return value, nil
}
