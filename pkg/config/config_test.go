package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chazu/hgeom/pkg/scene"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if d := Default().EvalTimeout(); d != 5*time.Second {
		t.Errorf("have timeout %s, want 5s", d)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Title != Default().Title {
		t.Errorf("have title %q, want default", cfg.Title)
	}
}

func TestLoadWithComments(t *testing.T) {
	path := writeFile(t, `{
// window
"title": "circles",
"mesh_cells": 32,
// drawing
"palette": ["#ff0000", "#00ff00"]
}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Title != "circles" {
		t.Errorf("have title %q, want circles", cfg.Title)
	}
	if cfg.MeshCells != 32 {
		t.Errorf("have mesh cells %d, want 32", cfg.MeshCells)
	}
	// Unset fields keep their defaults.
	if cfg.Width != Default().Width {
		t.Errorf("have width %d, want default %d", cfg.Width, Default().Width)
	}

	colors, err := cfg.Colors()
	if err != nil {
		t.Fatalf("Colors failed: %v", err)
	}
	want := []scene.Color{{R: 1}, {G: 1}}
	for i := range want {
		if colors[i] != want[i] {
			t.Errorf("colour %d: have %+v, want %+v", i, colors[i], want[i])
		}
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad json", `{"title": }`, "parse"},
		{"zero cells", `{"mesh_cells": 0}`, "mesh_cells must be positive"},
		{"negative radius", `{"line_radius": -1}`, "line_radius must be positive"},
		{"empty palette", `{"palette": []}`, "palette must not be empty"},
		{"bad colour", `{"palette": ["#12345"]}`, "palette entry 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("have %q, want containing %q", err, tt.want)
			}
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	cfg.Tolerance = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"width", "tolerance"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("have %q, want mention of %s", err, want)
		}
	}
}
