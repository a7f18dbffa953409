package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/hgeom/pkg/geometry"
)

// ---------------------------------------------------------------------------
// Sexp wrappers carrying geometry values through the interpreter
// ---------------------------------------------------------------------------

type sexpVertex struct{ v geometry.Vertex3[float64] }

func (s *sexpVertex) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vertex %g %g %g)", s.v.X(), s.v.Y(), s.v.Z())
}
func (s *sexpVertex) Type() *zygo.RegisteredType { return nil }

type sexpVertex2 struct{ v geometry.Vertex2[float64] }

func (s *sexpVertex2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vertex2 %g %g)", s.v.X(), s.v.Y())
}
func (s *sexpVertex2) Type() *zygo.RegisteredType { return nil }

type sexpDirection struct{ d geometry.Direction3[float64] }

func (s *sexpDirection) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(direction %g %g %g)", s.d.DX(), s.d.DY(), s.d.DZ())
}
func (s *sexpDirection) Type() *zygo.RegisteredType { return nil }

type sexpLine struct{ l geometry.Line3[float64] }

func (s *sexpLine) SexpString(ps *zygo.PrintState) string {
	b, d := s.l.Base(), s.l.Dir()
	return fmt.Sprintf("(line (vertex %g %g %g) (direction %g %g %g))",
		b.X(), b.Y(), b.Z(), d.DX(), d.DY(), d.DZ())
}
func (s *sexpLine) Type() *zygo.RegisteredType { return nil }

type sexpPlane struct{ p geometry.Plane3[float64] }

func (s *sexpPlane) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(plane %g %g %g %g)", s.p.A(), s.p.B(), s.p.C(), s.p.D())
}
func (s *sexpPlane) Type() *zygo.RegisteredType { return nil }

type sexpTransform struct{ t geometry.Transform3[float64] }

func (s *sexpTransform) SexpString(ps *zygo.PrintState) string {
	m := s.t.Matrix()
	var sb strings.Builder
	sb.WriteString("(matrix")
	for _, row := range m {
		for _, v := range row {
			fmt.Fprintf(&sb, " %g", v)
		}
	}
	sb.WriteString(")")
	return sb.String()
}
func (s *sexpTransform) Type() *zygo.RegisteredType { return nil }

// sexpConstructRef is returned by the scene recorders.
type sexpConstructRef struct {
	kind  string
	name  string
	count int
}

func (s *sexpConstructRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s %q %d)", s.kind, s.name, s.count)
}
func (s *sexpConstructRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW reports whether s is a preprocessed keyword and returns its name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds a mixed positional and keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

func describe(s zygo.Sexp) string {
	return fmt.Sprintf("%T (%s)", s, s.SexpString(nil))
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", describe(s))
}

// toFloats converts every element of args to a number.
func toFloats(args []zygo.Sexp) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %s", describe(s))
}

// toKeywordString accepts both :name and "name".
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %s", describe(s))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

func toVertex(s zygo.Sexp) (geometry.Vertex3[float64], error) {
	if v, ok := s.(*sexpVertex); ok {
		return v.v, nil
	}
	return geometry.Vertex3[float64]{}, fmt.Errorf("expected vertex, got %s", describe(s))
}

func toDirection(s zygo.Sexp) (geometry.Direction3[float64], error) {
	if d, ok := s.(*sexpDirection); ok {
		return d.d, nil
	}
	return geometry.Direction3[float64]{}, fmt.Errorf("expected direction, got %s", describe(s))
}

func toLine(s zygo.Sexp) (geometry.Line3[float64], error) {
	if l, ok := s.(*sexpLine); ok {
		return l.l, nil
	}
	return geometry.Line3[float64]{}, fmt.Errorf("expected line, got %s", describe(s))
}

func toTransform(s zygo.Sexp) (geometry.Transform3[float64], error) {
	if t, ok := s.(*sexpTransform); ok {
		return t.t, nil
	}
	return geometry.Transform3[float64]{}, fmt.Errorf("expected transform, got %s", describe(s))
}

// sexpListToSlice converts a list or array to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// collectVertices flattens vertices and lists of vertices into one slice.
func collectVertices(args []zygo.Sexp) ([]geometry.Vertex3[float64], error) {
	var out []geometry.Vertex3[float64]
	for _, a := range args {
		if v, ok := a.(*sexpVertex); ok {
			out = append(out, v.v)
			continue
		}
		items, err := sexpListToSlice(a)
		if err != nil {
			return nil, fmt.Errorf("expected vertex or list of vertices, got %s", describe(a))
		}
		for _, item := range items {
			v, err := toVertex(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func vertexList(vs []geometry.Vertex3[float64]) zygo.Sexp {
	items := make([]zygo.Sexp, len(vs))
	for i, v := range vs {
		items[i] = &sexpVertex{v}
	}
	return zygo.MakeList(items)
}
