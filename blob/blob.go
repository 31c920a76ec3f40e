// Package blob paints large soft colored blobs drifting along looping paths
// underneath the particle field.
package blob

import (
	"math"
	"time"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/vmath"
)

// Blob is one drifting wash
// The path goes from the anchor to anchor+Peak and back once per Period, linearly
type Blob struct {
	Anchor vmath.Vec2 // fraction of the surface extent
	Peak   vmath.Vec2 // surface units
	Period time.Duration
	Color  render.Color
}

// Offset returns the displacement from the anchor at elapsed time t
func (b Blob) Offset(t time.Duration) vmath.Vec2 {
	if b.Period <= 0 {
		return vmath.Vec2{}
	}
	phase := float64(t%b.Period) / float64(b.Period)
	if phase < 0.5 {
		return b.Peak.Scale(phase * 2)
	}
	return b.Peak.Scale(2 - phase*2)
}

// Defaults returns the stock three-blob backdrop
func Defaults() []Blob {
	return []Blob{
		{
			Anchor: vmath.V2(0.2, 0.3),
			Peak:   vmath.V2(100, -50),
			Period: parameter.BlobPeriod1,
			Color:  render.MustParseHex(parameter.PaletteCyan),
		},
		{
			Anchor: vmath.V2(0.8, 0.6),
			Peak:   vmath.V2(-80, 60),
			Period: parameter.BlobPeriod2,
			Color:  render.MustParseHex(parameter.PaletteMagenta),
		},
		{
			Anchor: vmath.V2(0.5, 0.8),
			Peak:   vmath.V2(60, -40),
			Period: parameter.BlobPeriod3,
			Color:  render.MustParseHex(parameter.PaletteViolet),
		},
	}
}

// Layer animates a set of blobs; implements render.Layer
type Layer struct {
	blobs       []Blob
	alpha       float64
	radiusScale float64
	enabled     bool

	elapsed       time.Duration
	width, height float64
}

// NewLayer creates an enabled layer
func NewLayer(blobs []Blob, alpha, radiusScale float64) *Layer {
	return &Layer{
		blobs:       blobs,
		alpha:       alpha,
		radiusScale: radiusScale,
		enabled:     true,
	}
}

// Advance moves the animation clock by the measured frame interval
func (l *Layer) Advance(dt time.Duration) {
	if dt > 0 {
		l.elapsed += dt
	}
}

// Elapsed returns the animation clock
func (l *Layer) Elapsed() time.Duration {
	return l.elapsed
}

// Resize sets the extent anchors are relative to
func (l *Layer) Resize(width, height float64) {
	l.width, l.height = width, height
}

// SetEnabled toggles painting; the clock keeps running either way
func (l *Layer) SetEnabled(on bool) {
	l.enabled = on
}

// Enabled reports whether the layer paints
func (l *Layer) Enabled() bool {
	return l.enabled
}

// SetLook changes wash strength and size
func (l *Layer) SetLook(alpha, radiusScale float64) {
	l.alpha = alpha
	l.radiusScale = radiusScale
}

// Center returns blob i's current center in surface units
func (l *Layer) Center(i int) vmath.Vec2 {
	b := l.blobs[i]
	base := vmath.V2(b.Anchor.X*l.width, b.Anchor.Y*l.height)
	return base.Add(b.Offset(l.elapsed))
}

// Radius returns the wash radius for the current extent
func (l *Layer) Radius() float64 {
	return math.Min(l.width, l.height) * l.radiusScale
}

// Paint washes every blob onto s
func (l *Layer) Paint(s render.Surface) {
	if !l.enabled || l.alpha <= 0 {
		return
	}
	r := l.Radius()
	if r <= 0 {
		return
	}
	for i := range l.blobs {
		s.Wash(l.Center(i), r, l.blobs[i].Color, l.alpha)
	}
}
