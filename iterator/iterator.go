package iterator

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation.
// https://en.wikipedia.org/wiki/Iterator_pattern
//
// Iterators are forward only and single pass. They are owned by a single caller:
// concurrent use of the same iterator is undefined.
type Iterator[T any] interface {
	// HasNext reports whether Next would return a value.
	HasNext() bool
	// Next returns the next value and advances the iterator.
	// Once the iterator is exhausted it returns ErrExhausted.
	Next() (T, error)
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	var values []T
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		values = append(values, v)
	}
	return values
}

// ForEach calls fn with every remaining value, stopping at the first error fn returns.
func ForEach[T any](it Iterator[T], fn func(T) error) error {
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

// Count drains it and returns the number of values it produced.
func Count[T any](it Iterator[T]) int {
	n := 0
	for it.HasNext() {
		if _, err := it.Next(); err != nil {
			break
		}
		n++
	}
	return n
}
