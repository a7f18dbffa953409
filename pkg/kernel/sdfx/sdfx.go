// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"golang.org/x/image/math/f32"

	"github.com/chazu/hgeom/pkg/algebra"
	"github.com/chazu/hgeom/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells controls marching cubes tessellation resolution along
// the longest side of a solid's bounding box.
const DefaultMeshCells = 64

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	cells int
}

// New returns a new SdfxKernel meshing with the given number of cells.
// A non-positive count selects DefaultMeshCells.
func New(cells int) *SdfxKernel {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

func vec(v algebra.Vec3[float64]) v3.Vec {
	return v3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// Sphere creates a sphere centred on c.
func (k *SdfxKernel) Sphere(c algebra.Vec3[float64], radius float64) kernel.Solid {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Sphere3D: %v", err))
	}
	return wrap(sdf.Transform3D(s, sdf.Translate3d(vec(c))))
}

// Segment creates a cylinder joining a and b. sdf.Cylinder3D is centred
// on the origin along Z, so it is tilted onto the segment direction and
// moved to the midpoint.
func (k *SdfxKernel) Segment(a, b algebra.Vec3[float64], radius float64) kernel.Solid {
	d := b.Sub(a)
	length := d.Norm()
	if algebra.IsZero(length) {
		return k.Sphere(a, radius)
	}
	s, err := sdf.Cylinder3D(length, radius, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cylinder3D: %v", err))
	}

	d = d.Div(length)
	theta := math.Acos(math.Max(-1, math.Min(1, d[2])))
	phi := math.Atan2(d[1], d[0])
	mid := a.Add(b).Scale(0.5)

	m := sdf.Translate3d(vec(mid)).Mul(sdf.RotateZ(phi)).Mul(sdf.RotateY(theta))
	return wrap(sdf.Transform3D(s, m))
}

// Union returns the union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(sdf3, renderer)

	mesh := &kernel.Mesh{
		Vertices: make([]float32, 0, len(triangles)*9),
		Normals:  make([]float32, 0, len(triangles)*9),
		Indices:  make([]uint32, 0, len(triangles)*3),
	}
	for _, tri := range triangles {
		n := tri.Normal()
		mesh.AddTriangle(f32v(tri[0]), f32v(tri[1]), f32v(tri[2]),
			f32.Vec3{float32(n.X), float32(n.Y), float32(n.Z)})
	}
	return mesh, nil
}

func f32v(v v3.Vec) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
