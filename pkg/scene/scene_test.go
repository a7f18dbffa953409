package scene

import (
	"strings"
	"testing"

	"github.com/chazu/hgeom/pkg/algebra"
	"github.com/chazu/hgeom/pkg/geometry"
)

func v(x, y, z float64) geometry.Vertex3[float64] { return geometry.NewVertex3(x, y, z) }

var red = Color{R: 1}

func TestObjectIDDeterministic(t *testing.T) {
	a := NewObjectID(KindPoints, "trail", []geometry.Vertex3[float64]{v(1, 2, 3)})
	b := NewObjectID(KindPoints, "trail", []geometry.Vertex3[float64]{geometry.NewHVertex3(2.0, 4, 6, 2)})
	if a != b {
		t.Fatalf("same normalized content produced %s and %s", a, b)
	}
	if a.IsZero() {
		t.Fatal("ObjectID is zero")
	}
	if len(a.Short()) != 8 || !strings.HasPrefix(a.String(), a.Short()) {
		t.Fatalf("Short() = %q, String() = %q", a.Short(), a.String())
	}

	others := []ObjectID{
		NewObjectID(KindStrip, "trail", []geometry.Vertex3[float64]{v(1, 2, 3)}),
		NewObjectID(KindPoints, "other", []geometry.Vertex3[float64]{v(1, 2, 3)}),
		NewObjectID(KindPoints, "trail", []geometry.Vertex3[float64]{v(1, 2, 4)}),
	}
	for i, o := range others {
		if o == a {
			t.Errorf("variant %d collides with the original ObjectID", i)
		}
	}
}

func TestSceneAddLookup(t *testing.T) {
	s := New()
	s.Add(NewConstruct(KindPoints, "a", red, []geometry.Vertex3[float64]{v(0, 0, 0)}))
	s.Add(NewConstruct(KindStrip, "b", red, []geometry.Vertex3[float64]{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0)}))
	s.Add(NewConstruct(KindPoints, "", red, nil))

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if s.VertexCount() != 4 {
		t.Fatalf("VertexCount() = %d, want 4", s.VertexCount())
	}
	if c := s.Lookup("b"); c == nil || c.Kind != KindStrip {
		t.Fatalf("Lookup(b) = %v, want strip", c)
	}
	if s.Lookup("missing") != nil {
		t.Fatal("Lookup(missing) returned a construct")
	}
}

func TestEdges(t *testing.T) {
	pts := []geometry.Vertex3[float64]{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0)}
	tests := []struct {
		kind Kind
		want int
	}{
		{KindPoints, 0},
		{KindSegments, 2},
		{KindStrip, 3},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := len(NewConstruct(tt.kind, "", red, pts).Edges()); got != tt.want {
				t.Errorf("len(Edges()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	s := New()
	if _, _, ok := s.Bounds(); ok {
		t.Fatal("Bounds() of an empty scene reported ok")
	}
	s.Add(NewConstruct(KindPoints, "p", red, []geometry.Vertex3[float64]{
		v(1, -2, 3),
		geometry.InvalidVertex3[float64](),
		v(-4, 5, 0),
	}))
	lo, hi, ok := s.Bounds()
	if !ok {
		t.Fatal("Bounds() reported no valid vertex")
	}
	if lo != (algebra.Vec3[float64]{-4, -2, 0}) || hi != (algebra.Vec3[float64]{1, 5, 3}) {
		t.Fatalf("Bounds()\nhave %v %v\nwant [-4 -2 0] [1 5 3]", lo, hi)
	}
}

func TestValidate(t *testing.T) {
	s := New()
	s.Add(NewConstruct(KindPoints, "dup", red, []geometry.Vertex3[float64]{v(0, 0, 0)}))
	s.Add(NewConstruct(KindPoints, "dup", red, []geometry.Vertex3[float64]{v(1, 0, 0)}))
	s.Add(NewConstruct(KindSegments, "odd", red, []geometry.Vertex3[float64]{v(0, 0, 0), v(1, 0, 0), v(2, 0, 0)}))
	s.Add(NewConstruct(KindStrip, "short", red, []geometry.Vertex3[float64]{v(0, 0, 0)}))
	s.Add(NewConstruct(KindPoints, "inf", red, []geometry.Vertex3[float64]{geometry.InvalidVertex3[float64](), v(0, 0, 0)}))
	s.Add(NewConstruct(KindPoints, "empty", red, nil))

	r := Validate(s)
	if r.OK() {
		t.Fatal("OK() = true, want false")
	}
	if len(r.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3: %v", len(r.Errors), r.Errors)
	}
	wantErrs := []string{"duplicate name", "even vertex count", "at least 2 vertices"}
	for i, want := range wantErrs {
		if !strings.Contains(r.Errors[i].Error(), want) {
			t.Errorf("Errors[%d] = %q, want it to mention %q", i, r.Errors[i].Error(), want)
		}
		if r.Errors[i].Severity != SeverityError {
			t.Errorf("Errors[%d].Severity = %v, want error", i, r.Errors[i].Severity)
		}
	}
	if len(r.Warnings) != 2 {
		t.Fatalf("len(Warnings) = %d, want 2: %v", len(r.Warnings), r.Warnings)
	}
	if r.Warnings[0].Name != "empty" || r.Warnings[1].Name != "inf" {
		t.Fatalf("Warnings = %v, want empty then inf", r.Warnings)
	}
}

func TestValidateClean(t *testing.T) {
	s := New()
	s.Add(NewConstruct(KindSegments, "axes", red, []geometry.Vertex3[float64]{v(0, 0, 0), v(1, 0, 0)}))
	if r := Validate(s); !r.OK() || len(r.Warnings) != 0 {
		t.Fatalf("Validate(clean) = %+v, want no findings", r)
	}
}
