package algebra

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of types the kernel computes with.
type Scalar interface {
	constraints.Float
}

// Zero returns the additive identity.
func Zero[T Scalar]() T { return 0 }

// One returns the multiplicative identity.
func One[T Scalar]() T { return 1 }

// Epsilon returns the absolute tolerance used when a value is compared
// against zero without an explicit tolerance policy. The value depends on
// the precision of T.
func Epsilon[T Scalar]() T {
	var v T
	switch any(v).(type) {
	case float32:
		return T(1e-5)
	default:
		return T(1e-9)
	}
}

// Inf returns positive infinity. It marks the components of unsolvable
// geometric results.
func Inf[T Scalar]() T { return T(math.Inf(1)) }

// NaN returns a not-a-number value.
func NaN[T Scalar]() T { return T(math.NaN()) }

// IsZero reports whether |v| <= Epsilon[T]().
func IsZero[T Scalar](v T) bool {
	return Abs(v) <= Epsilon[T]()
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite[T Scalar](v T) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Abs returns |v|.
func Abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sqrt returns the square root of v computed in double precision.
func Sqrt[T Scalar](v T) T {
	return T(math.Sqrt(float64(v)))
}

// ErrDimension is matched by every DimensionError.
var ErrDimension = errors.New("algebra: invalid dimension")

// DimensionError reports an input sequence whose length does not match the
// fixed size of the value being built.
type DimensionError struct {
	Want int
	Have int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("algebra: expected %d components, got %d", e.Want, e.Have)
}

// Is makes errors.Is(err, ErrDimension) succeed.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimension
}

func checkLen(want, have int) error {
	if want != have {
		return &DimensionError{Want: want, Have: have}
	}
	return nil
}
