package preview

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gogpu/gg"

	"github.com/chazu/hgeom/pkg/geometry"
	"github.com/chazu/hgeom/pkg/scene"
)

var errFlush = errors.New("device lost")

// flakyAccelerator leaves all drawing to the CPU and fails Flush while
// failing is set.
type flakyAccelerator struct {
	failing atomic.Bool
}

func (a *flakyAccelerator) Name() string { return "flaky" }

func (a *flakyAccelerator) Init() error { return nil }

func (a *flakyAccelerator) Close() {}

func (a *flakyAccelerator) CanAccelerate(gg.AcceleratedOp) bool { return false }

func (a *flakyAccelerator) FillPath(gg.GPURenderTarget, *gg.Path, *gg.Paint) error {
	return gg.ErrFallbackToCPU
}

func (a *flakyAccelerator) StrokePath(gg.GPURenderTarget, *gg.Path, *gg.Paint) error {
	return gg.ErrFallbackToCPU
}

func (a *flakyAccelerator) FillShape(gg.GPURenderTarget, gg.DetectedShape, *gg.Paint) error {
	return gg.ErrFallbackToCPU
}

func (a *flakyAccelerator) StrokeShape(gg.GPURenderTarget, gg.DetectedShape, *gg.Paint) error {
	return gg.ErrFallbackToCPU
}

func (a *flakyAccelerator) Flush(gg.GPURenderTarget) error {
	if a.failing.Load() {
		return errFlush
	}
	return nil
}

func TestRenderReportsFlushError(t *testing.T) {
	acc := &flakyAccelerator{}
	if err := gg.RegisterAccelerator(acc); err != nil {
		t.Fatalf("RegisterAccelerator: %v", err)
	}
	// The accelerator stays registered for the rest of the package; once
	// it stops failing it only ever hands work back to the CPU.
	defer acc.failing.Store(false)

	s := scene.New()
	s.Add(scene.NewConstruct(scene.KindPoints, "dot", scene.Color{R: 1}, []vertex{geometry.NewVertex3(0.0, 0, 0)}))

	acc.failing.Store(true)
	if _, err := Render(s, IsometricView(), DefaultOptions()); !errors.Is(err, errFlush) {
		t.Fatalf("Render: have %v, want %v", err, errFlush)
	}

	acc.failing.Store(false)
	if _, err := Render(s, IsometricView(), DefaultOptions()); err != nil {
		t.Fatalf("Render after recovery: %v", err)
	}
}
