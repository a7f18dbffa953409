package geometry

import (
	"math"

	"github.com/chazu/hgeom/pkg/algebra"
)

// Transform3 is a homogeneous 4x4 transformation acting on column vectors.
// Values are immutable; composition returns new transforms.
type Transform3[T algebra.Scalar] struct {
	m algebra.Mat4[T]
}

// NewTransform3 wraps a raw matrix.
func NewTransform3[T algebra.Scalar](m algebra.Mat4[T]) Transform3[T] {
	return Transform3[T]{m}
}

// IdentityTransform3 returns the transform that leaves everything in place.
func IdentityTransform3[T algebra.Scalar]() Transform3[T] {
	return Transform3[T]{algebra.Identity4[T]()}
}

// Translation3 moves positions by (dx, dy, dz).
func Translation3[T algebra.Scalar](dx, dy, dz T) Transform3[T] {
	return Transform3[T]{algebra.Mat4[T]{
		{1, 0, 0, dx},
		{0, 1, 0, dy},
		{0, 0, 1, dz},
		{0, 0, 0, 1},
	}}
}

func sincos[T algebra.Scalar](angle T) (sin, cos T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

// RotationX rotates by angle radians about the X axis, counter-clockwise
// when looking down the axis towards the origin.
func RotationX[T algebra.Scalar](angle T) Transform3[T] {
	sin, cos := sincos(angle)
	return Transform3[T]{algebra.Mat4[T]{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}}
}

// RotationY rotates by angle radians about the Y axis.
func RotationY[T algebra.Scalar](angle T) Transform3[T] {
	sin, cos := sincos(angle)
	return Transform3[T]{algebra.Mat4[T]{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}}
}

// RotationZ rotates by angle radians about the Z axis.
func RotationZ[T algebra.Scalar](angle T) Transform3[T] {
	sin, cos := sincos(angle)
	return Transform3[T]{algebra.Mat4[T]{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// RotationAbout rotates by angle radians about the axis dir through the
// origin (Rodrigues' formula).
func RotationAbout[T algebra.Scalar](dir Direction3[T], angle T) Transform3[T] {
	sin, cos := sincos(angle)
	x, y, z := dir.DX(), dir.DY(), dir.DZ()
	k := 1 - cos
	return Transform3[T]{algebra.Mat4[T]{
		{x*x*k + cos, x*y*k - z*sin, x*z*k + y*sin, 0},
		{x*y*k + z*sin, y*y*k + cos, y*z*k - x*sin, 0},
		{x*z*k - y*sin, y*z*k + x*sin, z*z*k + cos, 0},
		{0, 0, 0, 1},
	}}
}

// RotationAboutLine rotates by angle radians about l.
func RotationAboutLine[T algebra.Scalar](l Line3[T], angle T) Transform3[T] {
	return about(l.Base(), RotationAbout(l.Dir(), angle))
}

// Scaling3 scales each axis about the origin.
func Scaling3[T algebra.Scalar](sx, sy, sz T) Transform3[T] {
	return Transform3[T]{algebra.Mat4[T]{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	}}
}

// UniformScaling3 scales all axes by s about the origin.
func UniformScaling3[T algebra.Scalar](s T) Transform3[T] { return Scaling3(s, s, s) }

// ScalingAbout3 scales each axis about center.
func ScalingAbout3[T algebra.Scalar](center Vertex3[T], sx, sy, sz T) Transform3[T] {
	return about(center, Scaling3(sx, sy, sz))
}

// UniformScalingAbout3 scales all axes by s about center.
func UniformScalingAbout3[T algebra.Scalar](center Vertex3[T], s T) Transform3[T] {
	return ScalingAbout3(center, s, s, s)
}

// about conjugates t so that it acts around c instead of the origin.
func about[T algebra.Scalar](c Vertex3[T], t Transform3[T]) Transform3[T] {
	p := c.Position()
	to := Translation3(-p[0], -p[1], -p[2])
	from := Translation3(p[0], p[1], p[2])
	return Transform3[T]{from.m.Mul(t.m).Mul(to.m)}
}

// Matrix returns the underlying row-major matrix.
func (t Transform3[T]) Matrix() algebra.Mat4[T] { return t.m }

// Then returns the transform that applies t first and next second.
func (t Transform3[T]) Then(next Transform3[T]) Transform3[T] {
	return Transform3[T]{next.m.Mul(t.m)}
}

// Inverse returns the inverse transform. ok is false for singular matrices
// such as a zero scaling.
func (t Transform3[T]) Inverse() (Transform3[T], bool) {
	inv, ok := t.m.Inverse()
	return Transform3[T]{inv}, ok
}

// ApplyPosition maps raw homogeneous coordinates. No weight division is
// performed.
func (t Transform3[T]) ApplyPosition(c algebra.Vec4[T]) algebra.Vec4[T] {
	return t.m.MulVec(c)
}

// ApplyDirection maps a direction vector through the linear part of t,
// ignoring translation.
func (t Transform3[T]) ApplyDirection(d algebra.Vec3[T]) algebra.Vec3[T] {
	var r algebra.Vec3[T]
	for i := range r {
		r[i] = t.m[i][0]*d[0] + t.m[i][1]*d[1] + t.m[i][2]*d[2]
	}
	return r
}

// Apply returns v transformed by t.
func (t Transform3[T]) Apply(v Vertex3[T]) Vertex3[T] { return v.Transformed(t) }

// Equals compares the matrices of t and u element-wise.
func (t Transform3[T]) Equals(u Transform3[T], tol algebra.Tolerance[T]) bool {
	return t.m.Equals(u.m, tol)
}
