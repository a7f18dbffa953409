// Package tessellate turns a scene into triangle meshes using a solid
// kernel. One mesh is produced per construct.
package tessellate

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/chazu/hgeom/pkg/geometry"
	"github.com/chazu/hgeom/pkg/kernel"
	"github.com/chazu/hgeom/pkg/scene"
)

// Options sets the thickness of rendered primitives.
type Options struct {
	PointRadius float64 // sphere radius for points and strip joints
	LineRadius  float64 // cylinder radius for segments and strips
}

// DefaultOptions returns radii suited to scenes a few units across.
func DefaultOptions() Options {
	return Options{PointRadius: 0.08, LineRadius: 0.03}
}

// FitTo raises the radii so that primitives stay thicker than one
// marching-cubes cell when s is meshed with the given cell count.
// Thinner primitives would fall between samples and vanish.
func (o Options) FitTo(s *scene.Scene, cells int) Options {
	if s == nil || cells <= 0 {
		return o
	}
	lo, hi, ok := s.Bounds()
	if !ok {
		return o
	}
	d := hi.Sub(lo)
	cell := max(d[0], d[1], d[2]) / float64(cells)
	o.PointRadius = max(o.PointRadius, cell)
	o.LineRadius = max(o.LineRadius, 0.75*cell)
	return o
}

// Tessellate produces one triangle mesh per construct of s using the
// provided kernel. Invalid vertices, and edges touching them, are
// skipped; a construct with nothing left to draw yields no mesh. The
// tessellator is read-only and never mutates the scene.
func Tessellate(s *scene.Scene, k kernel.Kernel, opts Options) ([]*kernel.Mesh, error) {
	if s == nil {
		return nil, nil
	}
	if opts.PointRadius <= 0 || opts.LineRadius <= 0 {
		return nil, fmt.Errorf("tessellate: radii must be positive, got point=%g line=%g",
			opts.PointRadius, opts.LineRadius)
	}

	var meshes []*kernel.Mesh
	for _, c := range s.Constructs {
		solid := buildSolid(k, c, opts)
		if solid == nil {
			Logger().Debug("tessellate: nothing to draw", "construct", c.Name, "id", c.ID.Short())
			continue
		}

		lo, hi := solid.BoundingBox()
		Logger().Debug("tessellate: meshing", "construct", c.Name, "min", lo, "max", hi)

		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: ToMesh failed for %q: %w", c.Name, err)
		}
		mesh.Name = c.Name
		if mesh.Name == "" {
			mesh.Name = c.ID.Short()
		}
		mesh.ID = c.ID.String()
		mesh.Color = f32.Vec3{float32(c.Color.R), float32(c.Color.G), float32(c.Color.B)}
		meshes = append(meshes, mesh)
	}

	return meshes, nil
}

// buildSolid unions the spheres and cylinders of one construct. It
// returns nil when every vertex is invalid.
func buildSolid(k kernel.Kernel, c *scene.Construct, opts Options) kernel.Solid {
	var solid kernel.Solid
	add := func(s kernel.Solid) {
		if solid == nil {
			solid = s
			return
		}
		solid = k.Union(solid, s)
	}

	switch c.Kind {
	case scene.KindPoints:
		for _, v := range c.Vertices {
			if !v.IsValid() {
				Logger().Debug("tessellate: skipping invalid vertex", "construct", c.Name, "vertex", v.String())
				continue
			}
			add(k.Sphere(v.Position(), opts.PointRadius))
		}

	case scene.KindSegments, scene.KindStrip:
		for _, e := range c.Edges() {
			if !e[0].IsValid() || !e[1].IsValid() {
				Logger().Debug("tessellate: skipping edge with invalid end", "construct", c.Name)
				continue
			}
			add(k.Segment(e[0].Position(), e[1].Position(), opts.LineRadius))
		}
		if c.Kind == scene.KindStrip {
			addJoints(c.Vertices, opts, k, add)
		}
	}
	return solid
}

// addJoints rounds off a strip with a sphere at every valid vertex.
func addJoints(vs []geometry.Vertex3[float64], opts Options, k kernel.Kernel, add func(kernel.Solid)) {
	r := max(opts.LineRadius, opts.PointRadius/2)
	for _, v := range vs {
		if v.IsValid() {
			add(k.Sphere(v.Position(), r))
		}
	}
}
