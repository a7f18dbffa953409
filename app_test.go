package main

import (
	"encoding/base64"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/chazu/hgeom/pkg/config"
)

// testConfig keeps marching cubes coarse and primitives thick enough to
// survive it.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.MeshCells = 24
	cfg.PointRadius = 0.2
	cfg.LineRadius = 0.15
	cfg.PreviewWidth, cfg.PreviewHeight = 128, 128
	return cfg
}

func newTestApp() *App {
	return NewApp(testConfig(), os.DirFS("examples"))
}

func evaluateExample(t *testing.T, app *App, name string) EvalResult {
	t.Helper()
	source, err := app.Example(name)
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	result := app.Evaluate(source)
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}
	return result
}

func meshNames(result EvalResult) map[string]MeshData {
	out := make(map[string]MeshData, len(result.Meshes))
	for _, m := range result.Meshes {
		out[m.Name] = m
	}
	return out
}

// TestE2ETranslationExample exercises the full pipeline: script -> engine
// -> scene -> tessellate -> meshes, the same path the Wails Evaluate
// binding takes, but without the Wails runtime.
func TestE2ETranslationExample(t *testing.T) {
	result := evaluateExample(t, newTestApp(), "translation")

	if result.Constructs != 2 || result.Vertices != 22 {
		t.Errorf("expected 2 constructs with 22 vertices, got %d and %d", result.Constructs, result.Vertices)
	}
	meshes := meshNames(result)
	for _, name := range []string{"path", "stops"} {
		m, ok := meshes[name]
		if !ok {
			t.Fatalf("missing mesh %q", name)
		}
		if len(m.Vertices) == 0 || len(m.Indices) == 0 {
			t.Errorf("mesh %q has no geometry", name)
		}
		if len(m.Vertices) != len(m.Normals) {
			t.Errorf("mesh %q: %d vertices but %d normals", name, len(m.Vertices), len(m.Normals))
		}
	}
	if meshes["path"].Color != "#f58231" {
		t.Errorf("expected orange path, got %s", meshes["path"].Color)
	}

	// The mesh reaches the end of the trail at (3, 6, 9).
	zMax := float32(math.Inf(-1))
	verts := meshes["stops"].Vertices
	for i := 2; i < len(verts); i += 3 {
		zMax = max(zMax, verts[i])
	}
	if zMax < 9 {
		t.Errorf("expected mesh to reach z=9, got %f", zMax)
	}
}

func TestE2ECirclesExample(t *testing.T) {
	result := evaluateExample(t, newTestApp(), "circles")

	meshes := meshNames(result)
	if len(meshes) != 4 {
		t.Fatalf("expected 4 meshes, got %d", len(meshes))
	}
	for axis, name := range []string{"circle-x", "circle-y", "circle-z"} {
		m, ok := meshes[name]
		if !ok {
			t.Fatalf("missing mesh %q", name)
		}
		// Each circle lies in the plane through the origin normal to its axis.
		for i := axis; i < len(m.Vertices); i += 3 {
			if math.Abs(float64(m.Vertices[i])) > 0.5 {
				t.Fatalf("%s: vertex coordinate %f strays from the circle plane", name, m.Vertices[i])
			}
		}
	}
}

func TestE2EArbitraryAxisExample(t *testing.T) {
	result := evaluateExample(t, newTestApp(), "arbitrary_axis")

	m, ok := meshNames(result)["circle"]
	if !ok {
		t.Fatal("missing mesh \"circle\"")
	}
	// Rotation about an axis through the origin preserves the distance 2.
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		x, y, z := float64(m.Vertices[i]), float64(m.Vertices[i+1]), float64(m.Vertices[i+2])
		if r := math.Sqrt(x*x + y*y + z*z); r > 2.5 {
			t.Fatalf("vertex at distance %f from the origin, expected about 2", r)
		}
	}
}

func TestE2EIntersectionsExample(t *testing.T) {
	result := evaluateExample(t, newTestApp(), "intersections")

	if len(result.Meshes) != 3 {
		t.Fatalf("expected 3 meshes, got %d", len(result.Meshes))
	}
	if result.Value != "true" {
		t.Errorf("expected the crossing to be valid, got %q", result.Value)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestE2EPreview(t *testing.T) {
	result := newTestApp().Evaluate(`(points "p" (vertex 0 0 0) (vertex 1 1 1))`)
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(result.Preview, prefix) {
		t.Fatalf("expected PNG data URL, got %.40q", result.Preview)
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(result.Preview, prefix))
	if err != nil {
		t.Fatalf("preview is not base64: %v", err)
	}
	if !strings.HasPrefix(string(data), "\x89PNG") {
		t.Error("preview is not a PNG")
	}
}

func TestE2EEmptySource(t *testing.T) {
	result := newTestApp().Evaluate("")
	if len(result.Errors) != 0 {
		t.Errorf("expected 0 errors, got %d", len(result.Errors))
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes, got %d", len(result.Meshes))
	}
}

func TestE2ESyntaxError(t *testing.T) {
	result := newTestApp().Evaluate(`(points "p" (vertex 1 2 3)`)
	if len(result.Errors) == 0 {
		t.Fatal("expected syntax error")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes on error, got %d", len(result.Meshes))
	}
}

func TestExamplesListing(t *testing.T) {
	examples := newTestApp().Examples()
	var names []string
	for _, ex := range examples {
		names = append(names, ex.Name)
		if ex.Source == "" {
			t.Errorf("example %q is empty", ex.Name)
		}
	}
	want := "arbitrary_axis,circles,intersections,translation"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("have examples %s, want %s", got, want)
	}

	if _, err := newTestApp().Example("missing"); err == nil {
		t.Error("expected error for a missing example")
	}
	if got := NewApp(nil, nil).Examples(); len(got) != 0 {
		t.Errorf("expected no examples without a bundle, got %d", len(got))
	}
}

func TestE2EBoundsCoverAllMeshes(t *testing.T) {
	app := newTestApp()
	result := app.Evaluate(`
(points "a" (vertex 0 0 0))
(points "b" (vertex 4 0 0))
`)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Bounds == nil {
		t.Fatal("expected bounds for a non-empty scene")
	}
	const slack = 0.3
	if b := result.Bounds; math.Abs(float64(b.Min[0])) > slack || math.Abs(float64(b.Max[0])-4) > slack {
		t.Errorf("expected x extent around [0, 4], got [%g, %g]", b.Min[0], b.Max[0])
	}

	if empty := app.Evaluate(""); empty.Bounds != nil {
		t.Errorf("expected no bounds for an empty scene, got %+v", empty.Bounds)
	}
}
