package geometry

import (
	"fmt"

	"github.com/chazu/hgeom/pkg/algebra"
)

// Plane3 is the set of points satisfying a⋅x + b⋅y + c⋅z + d = 0. The
// coefficients are kept as given; (a, b, c) need not be unit length.
type Plane3[T algebra.Scalar] struct {
	coeffs algebra.Vec4[T]
}

// NewPlane3 returns the plane with the given coefficients.
func NewPlane3[T algebra.Scalar](a, b, c, d T) Plane3[T] {
	return Plane3[T]{algebra.Vec4[T]{a, b, c, d}}
}

// PlaneAt3 returns the plane through p with normal n.
func PlaneAt3[T algebra.Scalar](p Vertex3[T], n Direction3[T]) Plane3[T] {
	nv := n.Vec()
	return Plane3[T]{algebra.Vec4[T]{nv[0], nv[1], nv[2], -nv.Dot(p.Position())}}
}

// PlaneThrough3 returns the plane through three points. Its normal is
// (p2-p1) × (p3-p1); collinear points yield a degenerate plane.
func PlaneThrough3[T algebra.Scalar](p1, p2, p3 Vertex3[T]) Plane3[T] {
	a := p1.Position()
	n := p2.Position().Sub(a).Cross(p3.Position().Sub(a))
	return Plane3[T]{algebra.Vec4[T]{n[0], n[1], n[2], -n.Dot(a)}}
}

// A, B, C and D return the coefficients of a⋅x + b⋅y + c⋅z + d = 0.
func (p Plane3[T]) A() T { return p.coeffs[0] }
func (p Plane3[T]) B() T { return p.coeffs[1] }
func (p Plane3[T]) C() T { return p.coeffs[2] }
func (p Plane3[T]) D() T { return p.coeffs[3] }

// Coeffs returns (a, b, c, d).
func (p Plane3[T]) Coeffs() algebra.Vec4[T] { return p.coeffs }

// NormalVec returns (a, b, c) without normalization.
func (p Plane3[T]) NormalVec() algebra.Vec3[T] {
	return algebra.Vec3[T]{p.coeffs[0], p.coeffs[1], p.coeffs[2]}
}

// Normal returns the unit normal.
func (p Plane3[T]) Normal() Direction3[T] { return DirectionOf3(p.NormalVec()) }

// Eval returns a⋅x + b⋅y + c⋅z + d at v.
func (p Plane3[T]) Eval(v Vertex3[T]) T {
	return p.NormalVec().Dot(v.Position()) + p.coeffs[3]
}

// CoordSystem returns Dim3.
func (p Plane3[T]) CoordSystem() CoordSystem { return Dim3 }

// IsValid reports whether the coefficients are finite and the normal is
// not zero.
func (p Plane3[T]) IsValid() bool {
	return allFinite(p.coeffs[:]...) && !algebra.IsZero(p.NormalVec().SquaredNorm())
}

func (p Plane3[T]) String() string {
	return fmt.Sprintf("plane[%g %g %g %g]", p.coeffs[0], p.coeffs[1], p.coeffs[2], p.coeffs[3])
}
