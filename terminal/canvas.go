package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/status"
)

// Canvas is a cell buffer presented to a tcell screen
type Canvas struct {
	*render.Buffer
	screen  tcell.Screen
	overlay *status.Registry
}

// NewCanvas creates a canvas over screen; overlay may be nil
func NewCanvas(screen tcell.Screen, opts render.BufferOptions, overlay *status.Registry) *Canvas {
	return &Canvas{
		Buffer:  render.NewBuffer(opts),
		screen:  screen,
		overlay: overlay,
	}
}

// toTcell converts a render color to a true color tcell color
func toTcell(c render.Color) tcell.Color {
	r, g, b := render.RGB255(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Extent returns the screen size in surface units
func (c *Canvas) Extent() (width, height float64) {
	cols, rows := c.screen.Size()
	cellW, cellH := c.CellSize()
	return float64(cols) * cellW, float64(rows) * cellH
}

// Present writes every cell, draws the overlay and shows the frame
func (c *Canvas) Present() {
	c.Range(func(x, y int, cell render.Cell) {
		style := tcell.StyleDefault.Foreground(toTcell(cell.Fg)).Background(toTcell(cell.Bg))
		c.screen.SetContent(x, y, cell.Rune, nil, style)
	})
	// Nothing to show until the first frame registers metrics
	if c.overlay != nil && c.overlay.Ints.Count()+c.overlay.Floats.Count() > 0 {
		c.drawOverlay()
	}
	c.screen.Show()
}

// drawOverlay prints the metrics line on the top row over the field
func (c *Canvas) drawOverlay() {
	cols, rows := c.Grid()
	if rows == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	x := 0
	for _, r := range " " + c.overlay.Line() + " " {
		if x >= cols {
			break
		}
		c.screen.SetContent(x, 0, r, nil, style)
		x++
	}
}
