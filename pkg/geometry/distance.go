package geometry

import "github.com/chazu/hgeom/pkg/algebra"

// DistanceVertices3 returns the euclidean distance between a and b.
func DistanceVertices3[T algebra.Scalar](a, b Vertex3[T]) T {
	return b.Position().Sub(a.Position()).Norm()
}

// DistanceVertices2 returns the euclidean distance between a and b.
func DistanceVertices2[T algebra.Scalar](a, b Vertex2[T]) T {
	return b.Position().Sub(a.Position()).Norm()
}

// DistanceVertexLine returns the distance from v to the closest point of l.
func DistanceVertexLine[T algebra.Scalar](v Vertex3[T], l Line3[T]) T {
	return l.Base().Position().Sub(v.Position()).Cross(l.Dir().Vec()).Norm()
}

// DistanceLineVertex is DistanceVertexLine with the arguments swapped.
func DistanceLineVertex[T algebra.Scalar](l Line3[T], v Vertex3[T]) T {
	return DistanceVertexLine(v, l)
}

// DistanceVertexPlane returns the signed distance of v from p. It is
// positive on the side the normal (a, b, c) points to.
func DistanceVertexPlane[T algebra.Scalar](v Vertex3[T], p Plane3[T]) T {
	return p.Eval(v) / p.NormalVec().Norm()
}

// DistancePlaneVertex returns the same signed value as DistanceVertexPlane.
func DistancePlaneVertex[T algebra.Scalar](p Plane3[T], v Vertex3[T]) T {
	return DistanceVertexPlane(v, p)
}

// DistanceLines returns the distance between two lines. For skew lines the
// result is signed by the orientation of dir1 × dir2. Lines whose
// direction cross product has a norm equal to 0 under tol are parallel.
func DistanceLines[T algebra.Scalar](l1, l2 Line3[T], tol algebra.Tolerance[T]) T {
	d1 := l1.Dir().Vec()
	n := d1.Cross(l2.Dir().Vec())
	span := l2.Base().Position().Sub(l1.Base().Position())
	nn := n.Norm()
	if tol.Equals(nn, 0) {
		return span.Cross(d1).Norm()
	}
	return span.Dot(n) / nn
}

// DistancePlanes returns the signed offset between parallel planes along
// their shared normal, and 0 when the planes intersect. Parallelism is
// decided by ParallelPlanes under tol.
func DistancePlanes[T algebra.Scalar](p1, p2 Plane3[T], tol algebra.Tolerance[T]) T {
	if !ParallelPlanes(p1, p2, tol) {
		return 0
	}
	return p2.D()/p2.NormalVec().Norm() - p1.D()/p1.NormalVec().Norm()
}
