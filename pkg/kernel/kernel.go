// Package kernel defines the abstract solid kernel used to turn scene
// constructs into renderable meshes. Points become spheres and segments
// become cylinders. Implementations (sdfx) provide the solid modelling
// behind this interface so the backend can be swapped without changing the
// rest of the system.
package kernel

import "github.com/chazu/hgeom/pkg/algebra"

// Solid is an opaque handle to a kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract solid kernel interface.
type Kernel interface {
	// Sphere returns a sphere of the given radius centred on c.
	Sphere(c algebra.Vec3[float64], radius float64) Solid
	// Segment returns a cylinder of the given radius joining a and b.
	// A degenerate segment yields a sphere at a.
	Segment(a, b algebra.Vec3[float64], radius float64) Solid

	Union(a, b Solid) Solid

	// ToMesh tessellates s into triangles.
	ToMesh(s Solid) (*Mesh, error)
}
