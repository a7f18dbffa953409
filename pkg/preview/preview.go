// Package preview rasterises a scene into a PNG snapshot. Vertices are
// projected through a homogeneous view transform, so a perspective matrix
// works as well as a rotation.
package preview

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/chazu/hgeom/pkg/algebra"
	"github.com/chazu/hgeom/pkg/geometry"
	"github.com/chazu/hgeom/pkg/scene"
)

// Options controls the size and look of a preview.
type Options struct {
	Width, Height int
	Margin        float64 // pixels kept free around the drawing
	PointRadius   float64 // pixels
	LineWidth     float64 // pixels
	Background    scene.Color
}

// DefaultOptions returns a 512x512 dark preview.
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		Margin:      24,
		PointRadius: 3,
		LineWidth:   1.5,
		Background:  scene.Color{R: 0.08, G: 0.08, B: 0.1},
	}
}

// IsometricView looks at the origin from (1, 1, 1): Z points up, X recedes
// to the lower left and Y to the lower right.
func IsometricView() geometry.Transform3[float64] {
	return geometry.RotationZ(-3 * math.Pi / 4).
		Then(geometry.RotationX(-math.Atan(math.Sqrt2)))
}

// point is a projected vertex in image space.
type point struct {
	x, y float64
	ok   bool
}

// projection maps view space onto the image, keeping the aspect ratio.
type projection struct {
	scale  float64
	cx, cy float64 // view-space centre of the drawing
	w, h   float64
}

func (p projection) apply(v algebra.Vec2[float64]) (float64, float64) {
	return p.w/2 + (v[0]-p.cx)*p.scale, p.h/2 - (v[1]-p.cy)*p.scale
}

// Render draws s as seen through view and returns PNG bytes. Points are
// drawn as discs, segments and strips as strokes; invalid vertices and
// vertices behind the viewer are skipped.
func Render(s *scene.Scene, view geometry.Transform3[float64], opts Options) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("preview: invalid size %dx%d", opts.Width, opts.Height)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()
	dc.ClearWithColor(opts.Background.RGBA())

	if s != nil {
		if err := draw(dc, s, view, opts); err != nil {
			return nil, err
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("preview: flush: %w", err)
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("preview: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func draw(dc *gg.Context, s *scene.Scene, view geometry.Transform3[float64], opts Options) error {
	projected := make([][]algebra.Vec2[float64], len(s.Constructs))
	valid := make([][]bool, len(s.Constructs))
	lo := algebra.Vec2[float64]{math.Inf(1), math.Inf(1)}
	hi := algebra.Vec2[float64]{math.Inf(-1), math.Inf(-1)}
	for i, c := range s.Constructs {
		projected[i] = make([]algebra.Vec2[float64], len(c.Vertices))
		valid[i] = make([]bool, len(c.Vertices))
		for j, v := range c.Vertices {
			p, ok := project(view, v)
			if !ok {
				continue
			}
			projected[i][j], valid[i][j] = p, true
			lo[0], lo[1] = min(lo[0], p[0]), min(lo[1], p[1])
			hi[0], hi[1] = max(hi[0], p[0]), max(hi[1], p[1])
		}
	}
	if math.IsInf(lo[0], 1) {
		return nil
	}

	pr := fit(lo, hi, opts)
	for i, c := range s.Constructs {
		pts := make([]point, len(c.Vertices))
		for j := range c.Vertices {
			if valid[i][j] {
				x, y := pr.apply(projected[i][j])
				pts[j] = point{x, y, true}
			}
		}
		if err := drawConstruct(dc, c, pts, opts); err != nil {
			return fmt.Errorf("preview: %q: %w", c.Name, err)
		}
	}
	return nil
}

// project applies view to the normalized position of v and divides by the
// resulting weight.
func project(view geometry.Transform3[float64], v geometry.Vertex3[float64]) (algebra.Vec2[float64], bool) {
	if !v.IsValid() {
		return algebra.Vec2[float64]{}, false
	}
	pos := v.Position()
	h := view.ApplyPosition(algebra.Vec4[float64]{pos[0], pos[1], pos[2], 1})
	if h[3] <= 0 || !algebra.IsFinite(h[3]) {
		return algebra.Vec2[float64]{}, false
	}
	p := algebra.Vec2[float64]{h[0] / h[3], h[1] / h[3]}
	return p, algebra.IsFinite(p[0]) && algebra.IsFinite(p[1])
}

// fit picks a uniform scale that puts [lo, hi] inside the image margins.
func fit(lo, hi algebra.Vec2[float64], opts Options) projection {
	w, h := float64(opts.Width), float64(opts.Height)
	availW := math.Max(w-2*opts.Margin, 1)
	availH := math.Max(h-2*opts.Margin, 1)
	spanX, spanY := hi[0]-lo[0], hi[1]-lo[1]

	scale := 1.0
	switch {
	case spanX > 0 && spanY > 0:
		scale = math.Min(availW/spanX, availH/spanY)
	case spanX > 0:
		scale = availW / spanX
	case spanY > 0:
		scale = availH / spanY
	}
	return projection{
		scale: scale,
		cx:    (lo[0] + hi[0]) / 2,
		cy:    (lo[1] + hi[1]) / 2,
		w:     w,
		h:     h,
	}
}

func drawConstruct(dc *gg.Context, c *scene.Construct, pts []point, opts Options) error {
	dc.SetRGB(c.Color.R, c.Color.G, c.Color.B)

	if c.Kind == scene.KindPoints {
		for _, p := range pts {
			if p.ok {
				dc.DrawCircle(p.x, p.y, opts.PointRadius)
			}
		}
		return dc.Fill()
	}

	dc.SetLineWidth(opts.LineWidth)
	stroke := func(a, b point) {
		if a.ok && b.ok {
			dc.MoveTo(a.x, a.y)
			dc.LineTo(b.x, b.y)
		}
	}
	switch c.Kind {
	case scene.KindSegments:
		for i := 0; i+1 < len(pts); i += 2 {
			stroke(pts[i], pts[i+1])
		}
	case scene.KindStrip:
		for i := 0; i+1 < len(pts); i++ {
			stroke(pts[i], pts[i+1])
		}
	}
	return dc.Stroke()
}
