package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is the render color type; components in [0, 1]
type Color = colorful.Color

// ParseHex parses "#rrggbb" or "#rgb"
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

// MustParseHex is ParseHex for compile-time palette constants
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Blend is alpha compositing of src over c
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src Color, alpha float64) Color {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	return c.BlendRgb(src, alpha)
}

// RGB255 returns 8-bit channels for terminal output
func RGB255(c Color) (r, g, b uint8) {
	return c.Clamped().RGB255()
}
