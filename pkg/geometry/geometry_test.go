package geometry

import (
	"math"
	"testing"

	"github.com/chazu/hgeom/pkg/algebra"
)

var tol = algebra.NewEpsilonTolerance(1e-9)

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func checkPos(t *testing.T, name string, v Vertex3[float64], x, y, z float64) {
	t.Helper()
	if !near(v.X(), x) || !near(v.Y(), y) || !near(v.Z(), z) {
		t.Fatalf("%s\nhave %v\nwant (%g, %g, %g)", name, v, x, y, z)
	}
}

func TestVertexNormalization(t *testing.T) {
	v := NewHVertex3(2.0, 4, 6, 2)
	checkPos(t, "NewHVertex3", v, 1, 2, 3)
	if v.W() != 2 {
		t.Fatalf("W\nhave %v\nwant 2", v.W())
	}
	if v.Coords() != (algebra.Vec4[float64]{2, 4, 6, 2}) {
		t.Fatalf("Coords\nhave %v\nwant [2 4 6 2]", v.Coords())
	}
	if !v.IsValid() {
		t.Fatal("IsValid: have false, want true")
	}
	if NewHVertex3(1.0, 0, 0, 0).IsValid() {
		t.Fatal("point at infinity: IsValid have true, want false")
	}
	if InvalidVertex3[float64]().IsValid() {
		t.Fatal("InvalidVertex3: IsValid have true, want false")
	}
	if v.CoordSystem() != Dim3 || Dim3.Homogeneous() != 4 || Dim2.Dimensions() != 2 {
		t.Fatal("CoordSystem: wrong dimensions")
	}

	v2 := NewHVertex2(10.0, 20, 10)
	if v2.X() != 1 || v2.Y() != 2 {
		t.Fatalf("Vertex2\nhave %v\nwant (1, 2)", v2)
	}
	if NewHVertex2(1.0, 1, 0).IsValid() {
		t.Fatal("Vertex2 at infinity: IsValid have true, want false")
	}
}

func TestDirectionUnitNorm(t *testing.T) {
	dirs := []Direction3[float64]{
		NewDirection3(1.0, 0, 0),
		NewDirection3(1.0, 1, 1),
		NewDirection3(20.0, 30, 50),
		NewDirection3(-0.001, 0.002, 1e-4),
		NewPlane3(1.0, 2, 3, 4).Normal(),
		PlaneThrough3(NewVertex3(0.0, 0, 0), NewVertex3(1.0, 0, 0), NewVertex3(0.0, 1, 0)).Normal(),
	}
	for _, d := range dirs {
		if n := SquaredNorm3(d.Vec()); math.Abs(n-1) > 1e-6 {
			t.Errorf("%v: squared norm %v, want 1", d, n)
		}
	}
	d2 := NewDirection2(3.0, 4)
	if n := SquaredNorm2(d2.Vec()); math.Abs(n-1) > 1e-6 {
		t.Errorf("%v: squared norm %v, want 1", d2, n)
	}
	if NewDirection3(0.0, 0, 0).IsValid() {
		t.Error("zero direction: IsValid have true, want false")
	}
	if f := NewDirection3[float32](1, 2, 2); math.Abs(float64(f.DY())-2.0/3) > 1e-6 {
		t.Errorf("float32 direction\nhave %v\nwant <1/3 2/3 2/3>", f)
	}
}

func TestPlaneConstruction(t *testing.T) {
	p := PlaneThrough3(NewVertex3(0.0, 0, 1), NewVertex3(1.0, 0, 1), NewVertex3(0.0, 1, 1))
	if p.Coeffs() != (algebra.Vec4[float64]{0, 0, 1, -1}) {
		t.Fatalf("PlaneThrough3\nhave %v\nwant plane[0 0 1 -1]", p)
	}
	if !p.IsValid() {
		t.Fatal("PlaneThrough3: IsValid have false, want true")
	}
	collinear := PlaneThrough3(NewVertex3(0.0, 0, 0), NewVertex3(1.0, 1, 1), NewVertex3(2.0, 2, 2))
	if collinear.IsValid() {
		t.Fatal("plane through collinear points: IsValid have true, want false")
	}

	at := PlaneAt3(NewVertex3(0.0, 0, 5), NewDirection3(0.0, 0, 2))
	if at.Coeffs() != (algebra.Vec4[float64]{0, 0, 1, -5}) {
		t.Fatalf("PlaneAt3\nhave %v\nwant plane[0 0 1 -5]", at)
	}
	if e := at.Eval(NewVertex3(7.0, -3, 5)); e != 0 {
		t.Fatalf("Eval on plane\nhave %v\nwant 0", e)
	}
}

func TestLine(t *testing.T) {
	l := LineThrough3(NewVertex3(1.0, 1, 1), NewVertex3(1.0, 1, 5))
	if l.Dir().Vec() != (algebra.Vec3[float64]{0, 0, 1}) {
		t.Fatalf("LineThrough3 dir\nhave %v\nwant <0 0 1>", l.Dir())
	}
	checkPos(t, "Line3.At", l.At(3), 1, 1, 4)
	if InvalidLine3[float64]().IsValid() {
		t.Fatal("InvalidLine3: IsValid have true, want false")
	}
}
