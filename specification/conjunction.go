package specification

type conjunction[T any] struct {
	base[T]
	Specs []Specification[T]
}

func (spec *conjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.Specs {
		if !s.IsSatisfiedBy(t) {
			return false
		}
	}
	return true
}
