package kernel

import "golang.org/x/image/math/f32"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Name     string    `json:"name"`     // construct the mesh came from
	ID       string    `json:"id"`
	Color    f32.Vec3  `json:"color"` // linear RGB in [0, 1]
}

// AddTriangle appends one flat-shaded triangle.
func (m *Mesh) AddTriangle(a, b, c, normal f32.Vec3) {
	base := uint32(m.VertexCount())
	for i, v := range [3]f32.Vec3{a, b, c} {
		m.Vertices = append(m.Vertices, v[0], v[1], v[2])
		m.Normals = append(m.Normals, normal[0], normal[1], normal[2])
		m.Indices = append(m.Indices, base+uint32(i))
	}
}

// Vertex returns the i'th vertex position.
func (m *Mesh) Vertex(i int) f32.Vec3 {
	return f32.Vec3{m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2]}
}

// Bounds returns the axis-aligned bounds of the vertices. ok is false for
// an empty mesh.
func (m *Mesh) Bounds() (lo, hi f32.Vec3, ok bool) {
	n := m.VertexCount()
	if n == 0 {
		return lo, hi, false
	}
	lo, hi = m.Vertex(0), m.Vertex(0)
	for i := 1; i < n; i++ {
		v := m.Vertex(i)
		for j := 0; j < 3; j++ {
			lo[j] = min(lo[j], v[j])
			hi[j] = max(hi[j], v[j])
		}
	}
	return lo, hi, true
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
