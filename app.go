package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/chazu/hgeom/pkg/config"
	"github.com/chazu/hgeom/pkg/engine"
	"github.com/chazu/hgeom/pkg/geometry"
	"github.com/chazu/hgeom/pkg/kernel"
	"github.com/chazu/hgeom/pkg/kernel/sdfx"
	"github.com/chazu/hgeom/pkg/preview"
	"github.com/chazu/hgeom/pkg/scene"
	"github.com/chazu/hgeom/pkg/tessellate"
)

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx      context.Context
	cfg      *config.Config
	engine   *engine.Engine
	kernel   kernel.Kernel
	view     geometry.Transform3[float64]
	examples fs.FS
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
	ID       string    `json:"id"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error or warning for the
// frontend. Construct is set for scene validation findings.
type EvalErrorData struct {
	Line      int    `json:"line"`
	Col       int    `json:"col"`
	Message   string `json:"message"`
	Construct string `json:"construct,omitempty"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Meshes     []MeshData      `json:"meshes"`
	Preview    string          `json:"preview"` // data URL of a PNG snapshot
	Value      string          `json:"value"`   // printed value of the last expression
	Constructs int             `json:"constructs"`
	Vertices   int             `json:"vertices"`
	Errors     []EvalErrorData `json:"errors"`
	Warnings   []EvalErrorData `json:"warnings"`
	Bounds     *BoundsData     `json:"bounds,omitempty"` // box around all meshes, for camera framing
}

// BoundsData is the axis-aligned box enclosing every mesh of a result.
type BoundsData struct {
	Min [3]float32 `json:"min"`
	Max [3]float32 `json:"max"`
}

// include grows b to cover m. A nil b is allocated on the first non-empty
// mesh.
func (b *BoundsData) include(m *kernel.Mesh) *BoundsData {
	lo, hi, ok := m.Bounds()
	if !ok {
		return b
	}
	if b == nil {
		return &BoundsData{Min: lo, Max: hi}
	}
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], lo[i])
		b.Max[i] = max(b.Max[i], hi[i])
	}
	return b
}

// Example is a bundled sample script.
type Example struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// NewApp creates an App from cfg, or from the defaults when cfg is nil.
// Sample scripts are read from examples, which may be nil.
func NewApp(cfg *config.Config, examples fs.FS) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	palette, err := cfg.Colors()
	if err != nil {
		log.Printf("Invalid palette, using defaults: %v", err)
		palette, _ = config.Default().Colors()
	}
	return &App{
		cfg: cfg,
		engine: engine.NewEngine(
			engine.WithTimeout(cfg.EvalTimeout()),
			engine.WithTolerance(cfg.Tolerance),
			engine.WithPalette(palette),
		),
		kernel:   sdfx.New(cfg.MeshCells),
		view:     preview.IsometricView(),
		examples: examples,
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate takes a geometry script and returns meshes, a preview and
// errors. This is the primary binding called by the frontend editor.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the script into a scene.
	res, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	// Step 2: Convert eval errors to the frontend format.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	s := res.Scene
	result.Value = res.Value
	result.Constructs = s.Len()
	result.Vertices = s.VertexCount()
	for _, w := range res.Validation.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: w.Message, Construct: w.Name})
	}

	// Step 3: Snapshot the scene. A failed preview is not fatal.
	if png, err := preview.Render(s, a.view, a.previewOptions()); err != nil {
		log.Printf("Preview error: %v", err)
		result.Warnings = append(result.Warnings, EvalErrorData{Message: "preview failed: " + err.Error()})
	} else {
		result.Preview = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	}

	// Step 4: Blocking validation errors stop before meshing.
	if !res.Validation.OK() {
		for _, e := range res.Validation.Errors {
			result.Errors = append(result.Errors, EvalErrorData{Message: e.Message, Construct: e.Name})
		}
		return result
	}

	// Step 5: Tessellate the scene into triangle meshes.
	opts := tessellate.Options{PointRadius: a.cfg.PointRadius, LineRadius: a.cfg.LineRadius}
	meshes, err := tessellate.Tessellate(s, a.kernel, opts.FitTo(s, a.cfg.MeshCells))
	if err != nil {
		log.Printf("Tessellate error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	// Step 6: Convert kernel meshes to the frontend MeshData format.
	for _, m := range meshes {
		c := scene.Color{R: float64(m.Color[0]), G: float64(m.Color[1]), B: float64(m.Color[2])}
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			Name:     m.Name,
			ID:       m.ID,
			Color:    c.Hex(),
		})
		result.Bounds = result.Bounds.include(m)
	}

	return result
}

func (a *App) previewOptions() preview.Options {
	opts := preview.DefaultOptions()
	opts.Width, opts.Height = a.cfg.PreviewWidth, a.cfg.PreviewHeight
	return opts
}

// Examples lists the bundled sample scripts sorted by name.
func (a *App) Examples() []Example {
	out := []Example{}
	if a.examples == nil {
		return out
	}
	names, err := fs.Glob(a.examples, "*.hg")
	if err != nil {
		log.Printf("Examples error: %v", err)
		return out
	}
	sort.Strings(names)
	for _, name := range names {
		src, err := fs.ReadFile(a.examples, name)
		if err != nil {
			log.Printf("Examples error: %v", err)
			continue
		}
		out = append(out, Example{
			Name:   strings.TrimSuffix(path.Base(name), ".hg"),
			Source: string(src),
		})
	}
	return out
}

// Example returns the source of the named sample script.
func (a *App) Example(name string) (string, error) {
	if a.examples == nil {
		return "", fmt.Errorf("no examples bundled")
	}
	src, err := fs.ReadFile(a.examples, name+".hg")
	if err != nil {
		return "", fmt.Errorf("example %q: %w", name, err)
	}
	return string(src), nil
}
