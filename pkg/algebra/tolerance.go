package algebra

// Tolerance is a pluggable equality predicate for floating values.
type Tolerance[T Scalar] interface {
	// Equals reports whether a and b are considered the same value.
	Equals(a, b T) bool
}

// EpsilonTolerance considers b equal to a when b lies in
// [a - Epsilon, a + Epsilon].
type EpsilonTolerance[T Scalar] struct {
	Epsilon T
}

// NewEpsilonTolerance returns an EpsilonTolerance with the given bound.
// A negative bound is treated as its absolute value.
func NewEpsilonTolerance[T Scalar](eps T) EpsilonTolerance[T] {
	return EpsilonTolerance[T]{Epsilon: Abs(eps)}
}

// DefaultTolerance returns an EpsilonTolerance bounded by Epsilon[T]().
func DefaultTolerance[T Scalar]() EpsilonTolerance[T] {
	return EpsilonTolerance[T]{Epsilon: Epsilon[T]()}
}

// Equals implements Tolerance.
func (t EpsilonTolerance[T]) Equals(a, b T) bool {
	return Abs(b-a) <= t.Epsilon
}
