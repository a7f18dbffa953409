package sdfx

import (
	"math"
	"testing"

	"github.com/chazu/hgeom/pkg/algebra"
)

type tvec = algebra.Vec3[float64]

// testCells keeps marching cubes cheap in tests.
const testCells = 24

func TestSphere(t *testing.T) {
	k := New(testCells)
	mesh, err := k.ToMesh(k.Sphere(tvec{1, 2, 3}, 0.5))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}

	// Every vertex lies close to the sphere surface.
	for i := 0; i < mesh.VertexCount(); i++ {
		v := mesh.Vertex(i)
		dx, dy, dz := float64(v[0])-1, float64(v[1])-2, float64(v[2])-3
		if r := math.Sqrt(dx*dx + dy*dy + dz*dz); math.Abs(r-0.5) > 0.1 {
			t.Fatalf("vertex %d at distance %f from centre, expected ~0.5", i, r)
		}
	}
}

func TestSphereBoundingBox(t *testing.T) {
	min, max := New(testCells).Sphere(tvec{10, 0, -5}, 2).BoundingBox()

	const tol = 0.01
	expectMin := [3]float64{8, -2, -7}
	expectMax := [3]float64{12, 2, -3}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], expectMax[i])
		}
	}
}

func TestSegmentAxisAligned(t *testing.T) {
	k := New(testCells)
	seg := k.Segment(tvec{0, 0, 0}, tvec{10, 0, 0}, 0.5)
	min, max := seg.BoundingBox()

	// A cylinder along X: long in X, thin in Y and Z.
	const tol = 0.01
	if math.Abs(min[0]) > tol || math.Abs(max[0]-10) > tol {
		t.Errorf("X extent = [%f, %f], expected [0, 10]", min[0], max[0])
	}
	for i := 1; i < 3; i++ {
		if math.Abs(min[i]+0.5) > tol || math.Abs(max[i]-0.5) > tol {
			t.Errorf("extent %d = [%f, %f], expected [-0.5, 0.5]", i, min[i], max[i])
		}
	}

	mesh, err := k.ToMesh(seg)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("segment mesh is empty")
	}
}

func TestSegmentOblique(t *testing.T) {
	k := New(testCells)
	a, b := tvec{1, 1, 1}, tvec{3, 4, 7}
	min, max := k.Segment(a, b, 0.25).BoundingBox()

	// The bounding box is conservative but must contain both end points.
	for i := 0; i < 3; i++ {
		lo, hi := math.Min(a[i], b[i]), math.Max(a[i], b[i])
		if min[i] > lo+1e-9 || max[i] < hi-1e-9 {
			t.Errorf("axis %d: box [%f, %f] does not contain [%f, %f]", i, min[i], max[i], lo, hi)
		}
	}
}

func TestSegmentDegenerate(t *testing.T) {
	k := New(testCells)
	min, max := k.Segment(tvec{2, 2, 2}, tvec{2, 2, 2}, 1).BoundingBox()
	if math.Abs(min[0]-1) > 0.01 || math.Abs(max[0]-3) > 0.01 {
		t.Errorf("degenerate segment extent [%f, %f], expected sphere [1, 3]", min[0], max[0])
	}
}

func TestUnion(t *testing.T) {
	k := New(testCells)
	s1 := k.Sphere(tvec{0, 0, 0}, 1)
	s2 := k.Sphere(tvec{1.5, 0, 0}, 1)
	u := k.Union(s1, s2)

	min, max := u.BoundingBox()
	if math.Abs(min[0]+1) > 0.01 || math.Abs(max[0]-2.5) > 0.01 {
		t.Errorf("union X extent [%f, %f], expected [-1, 2.5]", min[0], max[0])
	}
	mesh, err := k.ToMesh(u)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("union mesh is empty")
	}
	t.Logf("union triangle count: %d", mesh.TriangleCount())
}

func TestOffsetSphereMeshBounds(t *testing.T) {
	k := New(testCells)
	mesh, err := k.ToMesh(k.Sphere(tvec{100, 200, 300}, 5))
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	lo, hi, ok := mesh.Bounds()
	if !ok {
		t.Fatal("mesh is empty")
	}

	const tol = 0.5
	expectMin := [3]float64{95, 195, 295}
	expectMax := [3]float64{105, 205, 305}

	for i := 0; i < 3; i++ {
		if math.Abs(float64(lo[i])-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, lo[i], expectMin[i])
		}
		if math.Abs(float64(hi[i])-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, hi[i], expectMax[i])
		}
	}
}

func TestNewDefaultCells(t *testing.T) {
	if k := New(0); k.cells != DefaultMeshCells {
		t.Errorf("New(0) cells = %d, want %d", k.cells, DefaultMeshCells)
	}
}
