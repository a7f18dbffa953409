package geometry

import "github.com/chazu/hgeom/pkg/algebra"

// ShortestSegment returns the endpoints of the shortest segment joining l1
// and l2, the first on l1 and the second on l2. When the bases coincide
// within tol the shared base is returned twice. Parallel lines with
// distinct bases have no unique segment and yield non-finite endpoints.
func ShortestSegment[T algebra.Scalar](l1, l2 Line3[T], tol algebra.Tolerance[T]) (Vertex3[T], Vertex3[T]) {
	b1, b2 := l1.Base().Position(), l2.Base().Position()
	d1, d2 := l1.Dir().Vec(), l2.Dir().Vec()

	span := b1.Sub(b2)
	if span.Equals(algebra.Vec3[T]{}, tol) {
		return l1.Base(), l1.Base()
	}

	vd1, vd2 := span.Dot(d1), span.Dot(d2)
	d1d2 := d1.Dot(d2)
	dd1, dd2 := d1.Dot(d1), d2.Dot(d2)

	mub := (d1d2*vd1 - dd1*vd2) / (d1d2*d1d2 - dd1*dd2)
	mua := (-vd1 + d1d2*mub) / dd1
	return VertexAt3(b1.Add(d1.Scale(mua))), VertexAt3(b2.Add(d2.Scale(mub)))
}

// IntersectLines returns the point shared by l1 and l2. Parallel, skew and
// superimposed lines yield InvalidVertex3.
func IntersectLines[T algebra.Scalar](l1, l2 Line3[T], tol algebra.Tolerance[T]) Vertex3[T] {
	pa, pb := ShortestSegment(l1, l2, tol)
	if pa.Equals(pb, tol) && !ParallelLines(l1, l2, tol) {
		return pa
	}
	return InvalidVertex3[T]()
}

// IntersectPlanes returns the line shared by p1 and p2, directed along
// n1 × n2. Parallel or coincident planes yield InvalidLine3. Parallelism is
// judged on the unit normals, as in ParallelPlanes, so scaling the
// coefficients of either plane does not change the outcome.
func IntersectPlanes[T algebra.Scalar](p1, p2 Plane3[T], tol algebra.Tolerance[T]) Line3[T] {
	if ParallelPlanes(p1, p2, tol) {
		return InvalidLine3[T]()
	}
	n1, n2 := p1.NormalVec(), p2.NormalVec()
	dir := n1.Cross(n2)

	h1, h2 := -p1.D(), -p2.D()
	n1n1, n2n2, n1n2 := n1.Dot(n1), n2.Dot(n2), n1.Dot(n2)
	det := n1n1*n2n2 - n1n2*n1n2
	c1 := (h1*n2n2 - h2*n1n2) / det
	c2 := (h2*n1n1 - h1*n1n2) / det

	base := n1.Scale(c1).Add(n2.Scale(c2))
	return NewLine3(VertexAt3(base), DirectionOf3(dir))
}
