package scene

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// HexColor parses "#rgb", "#rrggbb" and their alpha forms. Alpha is
// discarded.
func HexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return Color{}, fmt.Errorf("invalid colour %q", s)
		}
	}
	c := gg.Hex(hex)
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// RGBA converts c to an opaque drawing colour.
func (c Color) RGBA() gg.RGBA {
	return gg.RGB(c.R, c.G, c.B)
}

// Hex formats c as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
