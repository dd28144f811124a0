package specification

// Specification interface.
// Use New for creating specifications, only the predicate must be implemented.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]
}

// New returns a Specification satisfied whenever predicate returns true.
func New[T any](predicate func(t T) bool) Specification[T] {
	b := &base[T]{}
	b.self = b
	b.predicate = predicate
	return b
}

func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec := &and[T]{Left: left, Right: right}
	spec.self = spec
	return spec
}

func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec := &or[T]{Left: left, Right: right}
	spec.self = spec
	return spec
}

func Not[T any](spec Specification[T]) Specification[T] {
	n := &not[T]{Spec: spec}
	n.self = n
	return n
}

// Conjunction is satisfied when all specs are satisfied. An empty conjunction is always satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	spec := &conjunction[T]{Specs: specs}
	spec.self = spec
	return spec
}

// Disjunction is satisfied when any of specs is satisfied. An empty disjunction is never satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	spec := &disjunction[T]{Specs: specs}
	spec.self = spec
	return spec
}
