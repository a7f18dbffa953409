package geometry

import (
	"fmt"

	"github.com/chazu/hgeom/pkg/algebra"
)

// Line3 is an infinite line through a base vertex along a unit direction.
type Line3[T algebra.Scalar] struct {
	base Vertex3[T]
	dir  Direction3[T]
}

// NewLine3 returns the line through base along dir.
func NewLine3[T algebra.Scalar](base Vertex3[T], dir Direction3[T]) Line3[T] {
	return Line3[T]{base: base, dir: dir}
}

// LineThrough3 returns the line through a, directed towards b.
func LineThrough3[T algebra.Scalar](a, b Vertex3[T]) Line3[T] {
	return Line3[T]{base: a, dir: DirectionOf3(b.Position().Sub(a.Position()))}
}

// InvalidLine3 returns the no-solution sentinel line.
func InvalidLine3[T algebra.Scalar]() Line3[T] {
	return Line3[T]{base: InvalidVertex3[T](), dir: InvalidDirection3[T]()}
}

// Base and Dir return the line's base vertex and unit direction.
func (l Line3[T]) Base() Vertex3[T]   { return l.base }
func (l Line3[T]) Dir() Direction3[T] { return l.dir }

// At returns the point base + mu⋅dir.
func (l Line3[T]) At(mu T) Vertex3[T] {
	return VertexAt3(l.base.Position().Add(l.dir.v.Scale(mu)))
}

// Transformed returns the line carried by t.
func (l Line3[T]) Transformed(t Transform3[T]) Line3[T] {
	return Line3[T]{base: l.base.Transformed(t), dir: l.dir.Transformed(t)}
}

// CoordSystem returns Dim3.
func (l Line3[T]) CoordSystem() CoordSystem { return Dim3 }

// IsValid reports whether both the base and the direction are finite.
func (l Line3[T]) IsValid() bool { return l.base.IsValid() && l.dir.IsValid() }

func (l Line3[T]) String() string {
	return fmt.Sprintf("line[%v %v]", l.base, l.dir)
}
