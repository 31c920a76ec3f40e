package render

import "github.com/lixenwraith/particle-field/vmath"

// Surface is the drawing target of the field and its backdrop layers
// All coordinates and lengths are in continuous surface units
type Surface interface {
	// Clear resets the surface to its background
	Clear()

	// FillCircle draws a filled circle with a soft glow of the given spread in the same color
	FillCircle(center vmath.Vec2, radius float64, c Color, alpha, glow float64)

	// StrokeLine draws a straight one-unit line
	StrokeLine(from, to vmath.Vec2, c Color, alpha float64)

	// Wash tints the background with a radial falloff, used for large soft shapes
	Wash(center vmath.Vec2, radius float64, c Color, alpha float64)
}

// Layer paints onto a freshly cleared surface
type Layer interface {
	Paint(s Surface)
}

// LayerFunc adapts a function to Layer
type LayerFunc func(s Surface)

// Paint calls f(s)
func (f LayerFunc) Paint(s Surface) { f(s) }

// Layered repaints Under in order after every Clear, so whoever renders through
// it draws on top of the backdrop
type Layered struct {
	Surface
	Under []Layer
}

// Clear clears the wrapped surface and repaints the under-layers
func (l *Layered) Clear() {
	l.Surface.Clear()
	for _, layer := range l.Under {
		layer.Paint(l.Surface)
	}
}
