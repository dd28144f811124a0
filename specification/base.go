package specification

// base carries the composition methods shared by every specification.
// self points at the outermost value so And/Or/Not compose the concrete specification.
type base[T any] struct {
	self      Specification[T]
	predicate func(t T) bool
}

func (spec *base[T]) IsSatisfiedBy(t T) bool {
	return spec.predicate(t)
}

func (spec *base[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec.self, another)
}

func (spec *base[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec.self, another)
}

func (spec *base[T]) Not() Specification[T] {
	return Not[T](spec.self)
}
