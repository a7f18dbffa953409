package geometry

import (
	"fmt"

	"github.com/chazu/hgeom/pkg/algebra"
)

// Direction3 is a unit vector. Constructors normalize their input; a zero
// input produces NaN components.
type Direction3[T algebra.Scalar] struct {
	v algebra.Vec3[T]
}

// NewDirection3 returns (dx, dy, dz) scaled to unit length.
func NewDirection3[T algebra.Scalar](dx, dy, dz T) Direction3[T] {
	return DirectionOf3(algebra.Vec3[T]{dx, dy, dz})
}

// DirectionOf3 returns v scaled to unit length.
func DirectionOf3[T algebra.Scalar](v algebra.Vec3[T]) Direction3[T] {
	return Direction3[T]{v.Div(algebra.Sqrt(SquaredNorm3(v)))}
}

// InvalidDirection3 returns the no-solution sentinel: every component is
// +Inf.
func InvalidDirection3[T algebra.Scalar]() Direction3[T] {
	inf := algebra.Inf[T]()
	return Direction3[T]{algebra.Vec3[T]{inf, inf, inf}}
}

// DX, DY and DZ return the unit components.
func (d Direction3[T]) DX() T { return d.v[0] }
func (d Direction3[T]) DY() T { return d.v[1] }
func (d Direction3[T]) DZ() T { return d.v[2] }

// Vec returns the unit vector.
func (d Direction3[T]) Vec() algebra.Vec3[T] { return d.v }

// Dot returns the cosine of the angle between d and e.
func (d Direction3[T]) Dot(e Direction3[T]) T { return d.v.Dot(e.v) }

// Neg returns the opposite direction.
func (d Direction3[T]) Neg() Direction3[T] { return Direction3[T]{d.v.Neg()} }

// Transformed rotates d by the linear part of t and renormalizes it.
func (d Direction3[T]) Transformed(t Transform3[T]) Direction3[T] {
	return DirectionOf3(t.ApplyDirection(d.v))
}

// CoordSystem returns Dim3.
func (d Direction3[T]) CoordSystem() CoordSystem { return Dim3 }

// IsValid reports whether every component is finite.
func (d Direction3[T]) IsValid() bool { return allFinite(d.v[:]...) }

func (d Direction3[T]) String() string {
	return fmt.Sprintf("<%g, %g, %g>", d.v[0], d.v[1], d.v[2])
}

// Direction2 is a unit vector in the plane.
type Direction2[T algebra.Scalar] struct {
	v algebra.Vec2[T]
}

// NewDirection2 returns (dx, dy) scaled to unit length.
func NewDirection2[T algebra.Scalar](dx, dy T) Direction2[T] {
	v := algebra.Vec2[T]{dx, dy}
	return Direction2[T]{v.Div(algebra.Sqrt(SquaredNorm2(v)))}
}

// DX and DY return the unit components; Vec returns them as a vector.
func (d Direction2[T]) DX() T                { return d.v[0] }
func (d Direction2[T]) DY() T                { return d.v[1] }
func (d Direction2[T]) Vec() algebra.Vec2[T] { return d.v }

// CoordSystem returns Dim2.
func (d Direction2[T]) CoordSystem() CoordSystem { return Dim2 }

// IsValid reports whether both components are finite.
func (d Direction2[T]) IsValid() bool { return allFinite(d.v[:]...) }

func (d Direction2[T]) String() string {
	return fmt.Sprintf("<%g, %g>", d.v[0], d.v[1])
}
