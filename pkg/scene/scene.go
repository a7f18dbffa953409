package scene

import (
	"fmt"

	"github.com/chazu/hgeom/pkg/algebra"
	"github.com/chazu/hgeom/pkg/geometry"
)

// Kind enumerates the constructs a scene can hold.
type Kind int

const (
	KindPoints   Kind = iota // independent points
	KindSegments             // vertex pairs, each an independent segment
	KindStrip                // connected polyline through every vertex
)

func (k Kind) String() string {
	switch k {
	case KindPoints:
		return "points"
	case KindSegments:
		return "segments"
	case KindStrip:
		return "strip"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Color is an RGB colour with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Construct is one renderable object.
type Construct struct {
	ID       ObjectID                   `json:"id"`
	Kind     Kind                       `json:"kind"`
	Name     string                     `json:"name"`
	Color    Color                      `json:"color"`
	Vertices []geometry.Vertex3[float64] `json:"-"`
}

// NewConstruct builds a construct and derives its ObjectID.
func NewConstruct(kind Kind, name string, color Color, vertices []geometry.Vertex3[float64]) *Construct {
	return &Construct{
		ID:       NewObjectID(kind, name, vertices),
		Kind:     kind,
		Name:     name,
		Color:    color,
		Vertices: vertices,
	}
}

// Edges returns the vertex pairs to draw as segments. Points have none;
// a trailing unpaired vertex of a segments construct is ignored.
func (c *Construct) Edges() [][2]geometry.Vertex3[float64] {
	var edges [][2]geometry.Vertex3[float64]
	switch c.Kind {
	case KindSegments:
		for i := 0; i+1 < len(c.Vertices); i += 2 {
			edges = append(edges, [2]geometry.Vertex3[float64]{c.Vertices[i], c.Vertices[i+1]})
		}
	case KindStrip:
		for i := 0; i+1 < len(c.Vertices); i++ {
			edges = append(edges, [2]geometry.Vertex3[float64]{c.Vertices[i], c.Vertices[i+1]})
		}
	}
	return edges
}

// Scene is the ordered list of constructs produced by one evaluation. It is
// never mutated after evaluation completes.
type Scene struct {
	Constructs []*Construct   `json:"constructs"`
	NameIndex  map[string]int `json:"name_index"`
	Version    uint64         `json:"version"`
}

// New creates an empty Scene.
func New() *Scene {
	return &Scene{NameIndex: make(map[string]int)}
}

// Add appends c. It does not check for duplicate names; Validate does.
func (s *Scene) Add(c *Construct) {
	s.Constructs = append(s.Constructs, c)
	if c.Name != "" {
		if _, ok := s.NameIndex[c.Name]; !ok {
			s.NameIndex[c.Name] = len(s.Constructs) - 1
		}
	}
}

// Lookup returns the first construct with the given name, or nil.
func (s *Scene) Lookup(name string) *Construct {
	i, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Constructs[i]
}

// Len returns the number of constructs.
func (s *Scene) Len() int { return len(s.Constructs) }

// VertexCount returns the number of vertices across all constructs.
func (s *Scene) VertexCount() int {
	n := 0
	for _, c := range s.Constructs {
		n += len(c.Vertices)
	}
	return n
}

// Bounds returns the axis-aligned box enclosing every valid vertex. ok is
// false when the scene has no valid vertex.
func (s *Scene) Bounds() (lo, hi algebra.Vec3[float64], ok bool) {
	for _, c := range s.Constructs {
		for _, v := range c.Vertices {
			if !v.IsValid() {
				continue
			}
			p := v.Position()
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			for i := range p {
				lo[i] = min(lo[i], p[i])
				hi[i] = max(hi[i], p[i])
			}
		}
	}
	return lo, hi, ok
}
