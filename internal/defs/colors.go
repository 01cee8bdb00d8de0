// internal/defs/colors.go
package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultTextColor is the fallback for unparseable color names.
var DefaultTextColor = color.RGBA{255, 255, 255, 255}

// ParseHexColor parses #rgb or #rrggbb into an opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

// ColorOrDefault parses a hex color, substituting DefaultTextColor when the
// value is not recognized.
func ColorOrDefault(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return DefaultTextColor
	}
	return c
}

// PaletteColors resolves every swatch of a palette, skipping bad entries.
func PaletteColors(def PaletteDef) []color.RGBA {
	out := make([]color.RGBA, 0, len(def.Colors))
	for _, s := range def.Colors {
		if c, err := ParseHexColor(s); err == nil {
			out = append(out, c)
		}
	}
	return out
}
