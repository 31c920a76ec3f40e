package render

import (
	"math"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindLine
	kindParticle
)

// Cell is a single rasterized terminal cell
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color

	kind  cellKind
	alpha float64 // strongest line alpha, kindLine only
}

// IsParticle reports whether the cell holds a particle glyph
func (c Cell) IsParticle() bool { return c.kind == kindParticle }

// IsLine reports whether the cell holds a proximity line glyph
func (c Cell) IsLine() bool { return c.kind == kindLine }

// BufferOptions configures the cell rasterizer
type BufferOptions struct {
	CellWidth  float64
	CellHeight float64
	Background Color
	GlowGain   float64
	CoreBoost  float64
	LineGain   float64
}

// DefaultBufferOptions returns the rasterizer defaults
func DefaultBufferOptions() BufferOptions {
	return BufferOptions{
		CellWidth:  parameter.CellWidth,
		CellHeight: parameter.CellHeight,
		Background: MustParseHex(parameter.Background),
		GlowGain:   parameter.GlowGain,
		CoreBoost:  parameter.ParticleCoreBoost,
		LineGain:   parameter.LineGain,
	}
}

// Buffer rasterizes Surface operations onto a grid of terminal cells
// Each cell covers CellWidth x CellHeight surface units
type Buffer struct {
	opts  BufferOptions
	cells []Cell
	cols  int
	rows  int
}

// NewBuffer creates an empty (zero-sized) buffer; call Resize before drawing
func NewBuffer(opts BufferOptions) *Buffer {
	if opts.CellWidth <= 0 {
		opts.CellWidth = parameter.CellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = parameter.CellHeight
	}
	return &Buffer{opts: opts}
}

// Resize sets the extent in surface units, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height float64) {
	cols := int(math.Max(0, width) / b.opts.CellWidth)
	rows := int(math.Max(0, height) / b.opts.CellHeight)
	b.ResizeCells(cols, rows)
}

// ResizeCells sets the grid dimensions directly
func (b *Buffer) ResizeCells(cols, rows int) {
	if cols < 0 || rows < 0 {
		cols, rows = 0, 0
	}
	size := cols * rows
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.cols = cols
	b.rows = rows
	b.Clear()
}

// Grid returns the dimensions in cells
func (b *Buffer) Grid() (cols, rows int) {
	return b.cols, b.rows
}

// CellSize returns surface units per cell
func (b *Buffer) CellSize() (width, height float64) {
	return b.opts.CellWidth, b.opts.CellHeight
}

// At returns the cell at column x, row y; zero Cell if out of bounds
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.cols+x]
}

// Range visits every cell in row-major order
func (b *Buffer) Range(fn func(x, y int, c Cell)) {
	for y := 0; y < b.rows; y++ {
		row := b.cells[y*b.cols : (y+1)*b.cols]
		for x := range row {
			fn(x, y, row[x])
		}
	}
}

// Clear resets all cells to the background using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: b.opts.Background, Bg: b.opts.Background}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// cellOf maps a surface point to its cell
func (b *Buffer) cellOf(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X / b.opts.CellWidth)), int(math.Floor(p.Y / b.opts.CellHeight))
}

// cellCenter returns the surface point at the middle of a cell
func (b *Buffer) cellCenter(x, y int) vmath.Vec2 {
	return vmath.V2((float64(x)+0.5)*b.opts.CellWidth, (float64(y)+0.5)*b.opts.CellHeight)
}

// span returns the clipped cell rectangle covering center ± reach
func (b *Buffer) span(center vmath.Vec2, reach float64) (x0, y0, x1, y1 int) {
	x0, y0 = b.cellOf(vmath.V2(center.X-reach, center.Y-reach))
	x1, y1 = b.cellOf(vmath.V2(center.X+reach, center.Y+reach))
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.cols-1), min(y1, b.rows-1)
	return
}

// radial blends c into the background of every cell whose center lies within reach
// Weight falls off quadratically to zero at reach
func (b *Buffer) radial(center vmath.Vec2, reach float64, c Color, alpha float64) {
	if reach <= 0 || alpha <= 0 || len(b.cells) == 0 {
		return
	}
	x0, y0, x1, y1 := b.span(center, reach)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := vmath.Distance(b.cellCenter(x, y), center)
			if d >= reach {
				continue
			}
			f := 1 - d/reach
			cell := &b.cells[y*b.cols+x]
			cell.Bg = Blend(cell.Bg, c, alpha*f*f)
			if cell.kind == kindEmpty {
				cell.Fg = cell.Bg
			}
		}
	}
}

// FillCircle draws a particle glyph in the cell under center and tints nearby backgrounds for glow
func (b *Buffer) FillCircle(center vmath.Vec2, radius float64, c Color, alpha, glow float64) {
	b.radial(center, glow, c, alpha*b.opts.GlowGain)

	x, y := b.cellOf(center)
	if !b.inBounds(x, y) {
		return
	}
	cell := &b.cells[y*b.cols+x]
	cell.Rune = particleGlyph(radius)
	cell.Fg = Blend(cell.Bg, c, vmath.Clamp01(alpha*b.opts.CoreBoost))
	cell.kind = kindParticle
	cell.alpha = 0
}

// StrokeLine steps the segment through cell space
// Particle cells are never overwritten; overlapping lines keep the strongest
func (b *Buffer) StrokeLine(from, to vmath.Vec2, c Color, alpha float64) {
	a := alpha * b.opts.LineGain
	if a <= 0 || len(b.cells) == 0 {
		return
	}

	fx, fy := from.X/b.opts.CellWidth, from.Y/b.opts.CellHeight
	dx := to.X/b.opts.CellWidth - fx
	dy := to.Y/b.opts.CellHeight - fy
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}

	glyph := lineGlyph(to.Sub(from))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(fx + dx*t))
		y := int(math.Floor(fy + dy*t))
		if !b.inBounds(x, y) {
			continue
		}
		cell := &b.cells[y*b.cols+x]
		if cell.kind == kindParticle {
			continue
		}
		if cell.kind == kindLine && cell.alpha >= a {
			continue
		}
		cell.Rune = glyph
		cell.Fg = Blend(cell.Bg, c, a)
		cell.kind = kindLine
		cell.alpha = a
	}
}

// Wash tints backgrounds around center without touching glyphs
func (b *Buffer) Wash(center vmath.Vec2, radius float64, c Color, alpha float64) {
	b.radial(center, radius, c, alpha)
}
