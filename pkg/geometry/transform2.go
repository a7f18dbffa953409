package geometry

import "github.com/chazu/hgeom/pkg/algebra"

// Transform2 is a homogeneous 3x3 transformation of the plane.
type Transform2[T algebra.Scalar] struct {
	m algebra.Mat3[T]
}

// NewTransform2 wraps a raw 3x3 homogeneous matrix.
func NewTransform2[T algebra.Scalar](m algebra.Mat3[T]) Transform2[T] {
	return Transform2[T]{m}
}

// IdentityTransform2 returns the transform that leaves every vertex in place.
func IdentityTransform2[T algebra.Scalar]() Transform2[T] {
	return Transform2[T]{algebra.Identity3[T]()}
}

// Translation2 moves positions by (dx, dy).
func Translation2[T algebra.Scalar](dx, dy T) Transform2[T] {
	return Transform2[T]{algebra.Mat3[T]{
		{1, 0, dx},
		{0, 1, dy},
		{0, 0, 1},
	}}
}

// Rotation2 rotates counter-clockwise by angle radians about the origin.
func Rotation2[T algebra.Scalar](angle T) Transform2[T] {
	sin, cos := sincos(angle)
	return Transform2[T]{algebra.Mat3[T]{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}}
}

// Scaling2 scales x by sx and y by sy about the origin.
func Scaling2[T algebra.Scalar](sx, sy T) Transform2[T] {
	return Transform2[T]{algebra.Mat3[T]{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}}
}

// UniformScaling2 scales both axes by s about the origin.
func UniformScaling2[T algebra.Scalar](s T) Transform2[T] { return Scaling2(s, s) }

// ScalingAbout2 scales each axis about center.
func ScalingAbout2[T algebra.Scalar](center Vertex2[T], sx, sy T) Transform2[T] {
	to := Translation2(-center.X(), -center.Y())
	from := Translation2(center.X(), center.Y())
	return Transform2[T]{from.m.Mul(Scaling2(sx, sy).m).Mul(to.m)}
}

// Matrix returns the underlying 3x3 matrix.
func (t Transform2[T]) Matrix() algebra.Mat3[T] { return t.m }

// Then returns the transform that applies t first and next second.
func (t Transform2[T]) Then(next Transform2[T]) Transform2[T] {
	return Transform2[T]{next.m.Mul(t.m)}
}

// Inverse returns the inverse transform. ok is false when t is singular.
func (t Transform2[T]) Inverse() (Transform2[T], bool) {
	inv, ok := t.m.Inverse()
	return Transform2[T]{inv}, ok
}

// ApplyPosition maps a raw homogeneous 3-vector. The weight is not divided out.
func (t Transform2[T]) ApplyPosition(c algebra.Vec3[T]) algebra.Vec3[T] {
	return t.m.MulVec(c)
}

// ApplyDirection maps d by the upper 2x2 block, ignoring translation.
func (t Transform2[T]) ApplyDirection(d algebra.Vec2[T]) algebra.Vec2[T] {
	return algebra.Vec2[T]{
		t.m[0][0]*d[0] + t.m[0][1]*d[1],
		t.m[1][0]*d[0] + t.m[1][1]*d[1],
	}
}
