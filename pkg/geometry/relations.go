package geometry

import (
	"math"

	"github.com/chazu/hgeom/pkg/algebra"
)

// AnglePlanes returns the dihedral angle between p1 and p2 in [0, π].
func AnglePlanes[T algebra.Scalar](p1, p2 Plane3[T]) T {
	n1, n2 := p1.NormalVec(), p2.NormalVec()
	return acos(n1.Dot(n2) / (n1.Norm() * n2.Norm()))
}

// AngleDirections returns the angle between d1 and d2 in [0, π].
func AngleDirections[T algebra.Scalar](d1, d2 Direction3[T]) T {
	return acos(d1.Dot(d2))
}

// acos clamps rounding overshoot of a cosine before inverting it.
func acos[T algebra.Scalar](cos T) T {
	return T(math.Acos(math.Max(-1, math.Min(1, float64(cos)))))
}

// ParallelDirections reports whether d1 and d2 are parallel or
// anti-parallel.
func ParallelDirections[T algebra.Scalar](d1, d2 Direction3[T], tol algebra.Tolerance[T]) bool {
	return tol.Equals(algebra.Abs(d1.Dot(d2)), 1)
}

// ParallelLines reports whether l1 and l2 have parallel directions.
// Superimposed lines are parallel.
func ParallelLines[T algebra.Scalar](l1, l2 Line3[T], tol algebra.Tolerance[T]) bool {
	return ParallelDirections(l1.Dir(), l2.Dir(), tol)
}

// ParallelPlanes reports whether the normals of p1 and p2 are parallel.
func ParallelPlanes[T algebra.Scalar](p1, p2 Plane3[T], tol algebra.Tolerance[T]) bool {
	return ParallelDirections(p1.Normal(), p2.Normal(), tol)
}

// ParallelPlaneLine reports whether l is orthogonal to the normal of p.
func ParallelPlaneLine[T algebra.Scalar](p Plane3[T], l Line3[T], tol algebra.Tolerance[T]) bool {
	return tol.Equals(p.Normal().Dot(l.Dir()), 0)
}
