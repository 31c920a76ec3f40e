package render

import (
	"math"

	"github.com/lixenwraith/particle-field/vmath"
)

// Particle glyphs by radius in surface units
const (
	GlyphDot    = '·'
	GlyphBullet = '•'
	GlyphDisc   = '●'
)

// Line glyphs by on-screen slope
const (
	GlyphHorizontal = '─'
	GlyphVertical   = '│'
	GlyphFall       = '╲' // down-right, y grows downward
	GlyphRise       = '╱'
)

func particleGlyph(radius float64) rune {
	switch {
	case radius < 1.5:
		return GlyphDot
	case radius < 3:
		return GlyphBullet
	default:
		return GlyphDisc
	}
}

// lineGlyph picks the box-drawing glyph closest to the direction of d
// Surface units are square so the angle is taken directly
func lineGlyph(d vmath.Vec2) rune {
	if d.X == 0 && d.Y == 0 {
		return GlyphDot
	}
	deg := math.Atan2(d.Y, d.X) * 180 / math.Pi
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return GlyphHorizontal
	case deg >= 67.5 && deg < 112.5:
		return GlyphVertical
	case deg < 67.5:
		return GlyphFall
	default:
		return GlyphRise
	}
}
