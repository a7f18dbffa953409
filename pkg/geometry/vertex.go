package geometry

import (
	"fmt"

	"github.com/chazu/hgeom/pkg/algebra"
)

// Vertex3 is a position in 3D space held as homogeneous coordinates
// (x, y, z, w). Accessors return weight-divided values.
type Vertex3[T algebra.Scalar] struct {
	coords algebra.Vec4[T]
}

// NewVertex3 returns the vertex (x, y, z) with weight 1.
func NewVertex3[T algebra.Scalar](x, y, z T) Vertex3[T] {
	return Vertex3[T]{algebra.Vec4[T]{x, y, z, 1}}
}

// NewHVertex3 returns a vertex from raw homogeneous coordinates. A zero
// weight describes a point at infinity, which IsValid rejects.
func NewHVertex3[T algebra.Scalar](x, y, z, w T) Vertex3[T] {
	return Vertex3[T]{algebra.Vec4[T]{x, y, z, w}}
}

// VertexAt3 returns the vertex at position p.
func VertexAt3[T algebra.Scalar](p algebra.Vec3[T]) Vertex3[T] {
	return NewVertex3(p[0], p[1], p[2])
}

// Origin3 returns (0, 0, 0).
func Origin3[T algebra.Scalar]() Vertex3[T] { return NewVertex3[T](0, 0, 0) }

// InvalidVertex3 returns the no-solution sentinel: every coordinate is +Inf.
func InvalidVertex3[T algebra.Scalar]() Vertex3[T] {
	inf := algebra.Inf[T]()
	return Vertex3[T]{algebra.Vec4[T]{inf, inf, inf, inf}}
}

// X, Y and Z return the normalised coordinates. A zero weight yields
// non-finite values.
func (v Vertex3[T]) X() T { return v.coords[0] / v.coords[3] }
func (v Vertex3[T]) Y() T { return v.coords[1] / v.coords[3] }
func (v Vertex3[T]) Z() T { return v.coords[2] / v.coords[3] }

// W returns the raw weight.
func (v Vertex3[T]) W() T { return v.coords[3] }

// Coords returns the raw homogeneous coordinates.
func (v Vertex3[T]) Coords() algebra.Vec4[T] { return v.coords }

// Position returns the normalized cartesian position.
func (v Vertex3[T]) Position() algebra.Vec3[T] { return NormalizeCoords3(v.coords) }

// CoordSystem returns Dim3.
func (v Vertex3[T]) CoordSystem() CoordSystem { return Dim3 }

// IsValid reports whether the raw and normalised coordinates are all finite.
func (v Vertex3[T]) IsValid() bool {
	return allFinite(v.coords[:]...) && allFinite(v.X(), v.Y(), v.Z())
}

// Equals compares the normalized positions of v and u with tol.
func (v Vertex3[T]) Equals(u Vertex3[T], tol algebra.Tolerance[T]) bool {
	return v.Position().Equals(u.Position(), tol)
}

// Transform applies t to v in place and returns v. The weight is left
// as produced by the matrix; normalization happens on access.
func (v *Vertex3[T]) Transform(t Transform3[T]) *Vertex3[T] {
	v.coords = t.m.MulVec(v.coords)
	return v
}

// Transformed returns t applied to v, leaving v untouched.
func (v Vertex3[T]) Transformed(t Transform3[T]) Vertex3[T] {
	v.Transform(t)
	return v
}

func (v Vertex3[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X(), v.Y(), v.Z())
}

// Vertex2 is a position in the plane held as homogeneous coordinates
// (x, y, w).
type Vertex2[T algebra.Scalar] struct {
	coords algebra.Vec3[T]
}

// NewVertex2 returns the vertex (x, y) with weight 1.
func NewVertex2[T algebra.Scalar](x, y T) Vertex2[T] {
	return Vertex2[T]{algebra.Vec3[T]{x, y, 1}}
}

// NewHVertex2 returns a vertex from raw homogeneous coordinates.
func NewHVertex2[T algebra.Scalar](x, y, w T) Vertex2[T] {
	return Vertex2[T]{algebra.Vec3[T]{x, y, w}}
}

// X and Y return the normalised coordinates; W returns the raw weight.
func (v Vertex2[T]) X() T { return v.coords[0] / v.coords[2] }
func (v Vertex2[T]) Y() T { return v.coords[1] / v.coords[2] }
func (v Vertex2[T]) W() T { return v.coords[2] }

// Coords returns the raw homogeneous coordinates; Position divides out
// the weight.
func (v Vertex2[T]) Coords() algebra.Vec3[T]   { return v.coords }
func (v Vertex2[T]) Position() algebra.Vec2[T] { return NormalizeCoords2(v.coords) }

// CoordSystem returns Dim2.
func (v Vertex2[T]) CoordSystem() CoordSystem { return Dim2 }

// IsValid reports whether the raw and normalised coordinates are all finite.
func (v Vertex2[T]) IsValid() bool {
	return allFinite(v.coords[:]...) && allFinite(v.X(), v.Y())
}

// Transform applies t to v in place and returns v.
func (v *Vertex2[T]) Transform(t Transform2[T]) *Vertex2[T] {
	v.coords = t.m.MulVec(v.coords)
	return v
}

// Transformed returns t applied to v, leaving v untouched.
func (v Vertex2[T]) Transformed(t Transform2[T]) Vertex2[T] {
	v.Transform(t)
	return v
}

func (v Vertex2[T]) String() string {
	return fmt.Sprintf("(%g, %g)", v.X(), v.Y())
}
