// Package config loads viewer settings from a JSON file that may contain
// // line comments.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/sauerbraten/jsonfile"

	"github.com/chazu/hgeom/pkg/scene"
)

// Config holds the settings of the desktop viewer.
type Config struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// Marching-cubes cells along the longest side of each construct.
	MeshCells   int     `json:"mesh_cells"`
	PointRadius float64 `json:"point_radius"`
	LineRadius  float64 `json:"line_radius"`

	// Hex colours cycled through by constructs without an explicit :color.
	Palette []string `json:"palette"`

	Tolerance     float64 `json:"tolerance"`
	EvalTimeoutMS int     `json:"eval_timeout_ms"`

	PreviewWidth  int `json:"preview_width"`
	PreviewHeight int `json:"preview_height"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Title:         "hgeom",
		Width:         1280,
		Height:        800,
		MeshCells:     96,
		PointRadius:   0.08,
		LineRadius:    0.03,
		Palette:       []string{"#4363d8", "#e6194b", "#3cb44b", "#ffe119", "#f58231", "#42d4f4"},
		Tolerance:     1e-9,
		EvalTimeoutMS: 5000,
		PreviewWidth:  512,
		PreviewHeight: 512,
	}
}

// Load reads path on top of the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err := jsonfile.ParseFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot work with.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	positive("width", float64(c.Width))
	positive("height", float64(c.Height))
	positive("mesh_cells", float64(c.MeshCells))
	positive("point_radius", c.PointRadius)
	positive("line_radius", c.LineRadius)
	positive("tolerance", c.Tolerance)
	positive("eval_timeout_ms", float64(c.EvalTimeoutMS))
	positive("preview_width", float64(c.PreviewWidth))
	positive("preview_height", float64(c.PreviewHeight))

	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must not be empty"))
	} else if _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Colors parses the palette.
func (c *Config) Colors() ([]scene.Color, error) {
	out := make([]scene.Color, len(c.Palette))
	for i, hex := range c.Palette {
		col, err := scene.HexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		out[i] = col
	}
	return out, nil
}

// EvalTimeout returns the evaluation limit as a duration.
func (c *Config) EvalTimeout() time.Duration {
	return time.Duration(c.EvalTimeoutMS) * time.Millisecond
}
