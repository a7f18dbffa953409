package geometry

import (
	"fmt"

	"github.com/chazu/hgeom/pkg/algebra"
)

// CoordSystem identifies the dimension a primitive lives in. A primitive of
// dimension D is stored as D+1 homogeneous coordinates.
type CoordSystem int

const (
	Dim2 CoordSystem = 2
	Dim3 CoordSystem = 3
)

// Dimensions returns D.
func (cs CoordSystem) Dimensions() int { return int(cs) }

// Homogeneous returns the length of the coordinate vector, D+1.
func (cs CoordSystem) Homogeneous() int { return int(cs) + 1 }

func (cs CoordSystem) String() string {
	switch cs {
	case Dim2:
		return "2d"
	case Dim3:
		return "3d"
	default:
		return fmt.Sprintf("CoordSystem(%d)", int(cs))
	}
}

// Primitive is implemented by every geometric value in this package.
type Primitive interface {
	CoordSystem() CoordSystem
	// IsValid reports whether every component is finite.
	IsValid() bool
}

// NormalizeCoords2 divides the first two coordinates by the weight. A zero
// weight yields infinite or NaN components.
func NormalizeCoords2[T algebra.Scalar](c algebra.Vec3[T]) algebra.Vec2[T] {
	return algebra.Vec2[T]{c[0] / c[2], c[1] / c[2]}
}

// NormalizeCoords3 divides the first three coordinates by the weight. A zero
// weight yields infinite or NaN components.
func NormalizeCoords3[T algebra.Scalar](c algebra.Vec4[T]) algebra.Vec3[T] {
	return algebra.Vec3[T]{c[0] / c[3], c[1] / c[3], c[2] / c[3]}
}

// SquaredNorm2 returns the squared length of a 2D direction vector.
func SquaredNorm2[T algebra.Scalar](d algebra.Vec2[T]) T { return d.SquaredNorm() }

// SquaredNorm3 returns the squared length of a 3D direction vector.
func SquaredNorm3[T algebra.Scalar](d algebra.Vec3[T]) T { return d.SquaredNorm() }

func allFinite[T algebra.Scalar](vs ...T) bool {
	for _, v := range vs {
		if !algebra.IsFinite(v) {
			return false
		}
	}
	return true
}
