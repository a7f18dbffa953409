package preview

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"

	"github.com/chazu/hgeom/pkg/algebra"
	"github.com/chazu/hgeom/pkg/geometry"
	"github.com/chazu/hgeom/pkg/scene"
)

type vertex = geometry.Vertex3[float64]

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	return img
}

// rgb returns the 8-bit colour at (x, y).
func rgb(img image.Image, x, y int) [3]uint32 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}

func TestRenderEmptyScene(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 32
	opts.Background = scene.Color{R: 1, G: 1, B: 1}

	data, err := Render(scene.New(), IsometricView(), opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	img := decode(t, data)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("have size %dx%d, want 64x32", b.Dx(), b.Dy())
	}
	if c := rgb(img, 10, 10); c != [3]uint32{255, 255, 255} {
		t.Errorf("have background %v, want white", c)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 0
	if _, err := Render(scene.New(), IsometricView(), opts); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestRenderPointsFitImage(t *testing.T) {
	s := scene.New()
	red := scene.Color{R: 1}
	s.Add(scene.NewConstruct(scene.KindPoints, "corners", red, []vertex{
		geometry.NewVertex3(-1.0, -1, 0),
		geometry.NewVertex3(1.0, 1, 0),
		geometry.InvalidVertex3[float64](),
	}))

	opts := Options{Width: 100, Height: 100, Margin: 10, PointRadius: 4, LineWidth: 1}
	data, err := Render(s, geometry.IdentityTransform3[float64](), opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	img := decode(t, data)

	// (-1, -1) lands in the bottom-left margin corner, (1, 1) top-right.
	if c := rgb(img, 10, 90); c[0] < 200 || c[1] > 50 {
		t.Errorf("expected red disc at bottom-left, got %v", c)
	}
	if c := rgb(img, 90, 10); c[0] < 200 || c[1] > 50 {
		t.Errorf("expected red disc at top-right, got %v", c)
	}
	if c := rgb(img, 50, 50); c != [3]uint32{0, 0, 0} {
		t.Errorf("expected empty centre, got %v", c)
	}
}

func TestRenderStrip(t *testing.T) {
	s := scene.New()
	s.Add(scene.NewConstruct(scene.KindStrip, "bar", scene.Color{G: 1}, []vertex{
		geometry.NewVertex3(0.0, 0, 0),
		geometry.NewVertex3(10.0, 0, 0),
	}))

	opts := Options{Width: 100, Height: 50, Margin: 10, PointRadius: 2, LineWidth: 4}
	data, err := Render(s, geometry.IdentityTransform3[float64](), opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	img := decode(t, data)

	// A horizontal line through the middle row.
	for _, x := range []int{20, 50, 80} {
		if c := rgb(img, x, 25); c[1] < 200 {
			t.Errorf("expected green stroke at x=%d, got %v", x, c)
		}
	}
	if c := rgb(img, 50, 5); c != [3]uint32{0, 0, 0} {
		t.Errorf("expected background above the line, got %v", c)
	}
}

func TestProject(t *testing.T) {
	view := geometry.Translation3(1.0, 2, 3)
	p, ok := project(view, geometry.NewHVertex3(2.0, 4, 6, -2))
	if !ok {
		t.Fatal("expected negative weight vertex to project")
	}
	if p != (algebra.Vec2[float64]{0, 0}) {
		t.Errorf("have %v, want [0 0]", p)
	}

	if _, ok := project(view, geometry.InvalidVertex3[float64]()); ok {
		t.Error("expected invalid vertex to be skipped")
	}

	// A perspective divide by the view's weight row.
	persp := geometry.NewTransform3(algebra.Mat4[float64]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
	})
	p, ok = project(persp, geometry.NewVertex3(2.0, 4, 2))
	if !ok || p != (algebra.Vec2[float64]{1, 2}) {
		t.Errorf("have %v (ok=%v), want [1 2]", p, ok)
	}
	if _, ok := project(persp, geometry.NewVertex3(2.0, 4, -2)); ok {
		t.Error("expected vertex behind the viewer to be skipped")
	}
}

func TestFit(t *testing.T) {
	opts := Options{Width: 200, Height: 100, Margin: 10}
	pr := fit(algebra.Vec2[float64]{0, 0}, algebra.Vec2[float64]{4, 4}, opts)
	if math.Abs(pr.scale-20) > 1e-12 {
		t.Errorf("have scale %g, want 20", pr.scale)
	}
	x, y := pr.apply(algebra.Vec2[float64]{4, 4})
	if x != 140 || y != 10 {
		t.Errorf("have (%g, %g), want (140, 10)", x, y)
	}

	// A single point is centred.
	pr = fit(algebra.Vec2[float64]{3, 3}, algebra.Vec2[float64]{3, 3}, opts)
	if x, y := pr.apply(algebra.Vec2[float64]{3, 3}); x != 100 || y != 50 {
		t.Errorf("have (%g, %g), want (100, 50)", x, y)
	}
}

func TestIsometricViewKeepsZUp(t *testing.T) {
	up := IsometricView().ApplyDirection(algebra.Vec3[float64]{0, 0, 1})
	if up[1] <= 0 {
		t.Errorf("expected Z to point up the screen, got %v", up)
	}
	x := IsometricView().ApplyDirection(algebra.Vec3[float64]{1, 0, 0})
	y := IsometricView().ApplyDirection(algebra.Vec3[float64]{0, 1, 0})
	if math.Abs(x[1]-y[1]) > 1e-12 || x[1] >= 0 {
		t.Errorf("expected X and Y to recede equally downwards, got %v and %v", x, y)
	}
	if x[0] >= 0 || y[0] <= 0 {
		t.Errorf("expected X to the left and Y to the right, got %v and %v", x, y)
	}
	eye := IsometricView().ApplyDirection(algebra.Vec3[float64]{1, 1, 1}.Normalize())
	if math.Abs(eye[2]-1) > 1e-12 {
		t.Errorf("expected (1, 1, 1) to face the viewer, got %v", eye)
	}
}
