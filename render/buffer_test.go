package render

import (
	"testing"

	"github.com/lixenwraith/particle-field/vmath"
)

var (
	testBg     = MustParseHex("#000000")
	testCyan   = MustParseHex("#00f5ff")
	testViolet = MustParseHex("#8338ec")
)

func newTestBuffer(cols, rows int) *Buffer {
	opts := DefaultBufferOptions()
	opts.Background = testBg
	b := NewBuffer(opts)
	b.ResizeCells(cols, rows)
	return b
}

func TestBuffer_ResizeFromSurfaceUnits(t *testing.T) {
	b := NewBuffer(DefaultBufferOptions())
	b.Resize(800, 480)

	cols, rows := b.Grid()
	if cols != 100 || rows != 30 {
		t.Errorf("Grid() = %dx%d, want 100x30", cols, rows)
	}

	b.Resize(-5, 0)
	cols, rows = b.Grid()
	if cols != 0 || rows != 0 {
		t.Errorf("negative extent Grid() = %dx%d, want 0x0", cols, rows)
	}
}

func TestBuffer_ClearResetsCells(t *testing.T) {
	b := newTestBuffer(10, 5)
	b.FillCircle(vmath.V2(20, 20), 2, testCyan, 0.5, 20)
	b.Clear()

	b.Range(func(x, y int, c Cell) {
		if c.Rune != ' ' || c.Bg != testBg || c.IsParticle() || c.IsLine() {
			t.Fatalf("cell (%d,%d) not cleared: %+v", x, y, c)
		}
	})
}

func TestBuffer_FillCircleGlyphAndGlow(t *testing.T) {
	b := newTestBuffer(10, 5)
	// Cell (2,1) spans x [16,24), y [16,32)
	b.FillCircle(vmath.V2(20, 24), 3.5, testCyan, 0.6, 20)

	core := b.At(2, 1)
	if !core.IsParticle() || core.Rune != GlyphDisc {
		t.Fatalf("core cell = %+v, want particle %q", core, GlyphDisc)
	}
	if core.Fg == testBg {
		t.Error("particle foreground should be tinted")
	}

	neighbor := b.At(3, 1)
	if neighbor.Bg == testBg {
		t.Error("glow should tint the adjacent cell background")
	}

	far := b.At(8, 4)
	if far.Bg != testBg {
		t.Errorf("cell beyond glow reach tinted: %+v", far)
	}
}

func TestBuffer_ParticleGlyphByRadius(t *testing.T) {
	tests := []struct {
		radius float64
		want   rune
	}{
		{0.2, GlyphDot},
		{1.4, GlyphDot},
		{2.0, GlyphBullet},
		{3.9, GlyphDisc},
	}
	for _, tt := range tests {
		if got := particleGlyph(tt.radius); got != tt.want {
			t.Errorf("particleGlyph(%v) = %q, want %q", tt.radius, got, tt.want)
		}
	}
}

func TestBuffer_StrokeLineHorizontal(t *testing.T) {
	b := newTestBuffer(10, 5)
	b.StrokeLine(vmath.V2(4, 24), vmath.V2(60, 24), testCyan, 1)

	for x := 0; x <= 7; x++ {
		c := b.At(x, 1)
		if !c.IsLine() || c.Rune != GlyphHorizontal {
			t.Errorf("cell (%d,1) = %q line=%v, want %q", x, c.Rune, c.IsLine(), GlyphHorizontal)
		}
	}
	if b.At(8, 1).IsLine() {
		t.Error("line overran its endpoint")
	}
}

func TestBuffer_LineGlyphSlopes(t *testing.T) {
	tests := []struct {
		d    vmath.Vec2
		want rune
	}{
		{vmath.V2(10, 0), GlyphHorizontal},
		{vmath.V2(-10, 1), GlyphHorizontal},
		{vmath.V2(0, 10), GlyphVertical},
		{vmath.V2(10, 10), GlyphFall},
		{vmath.V2(10, -10), GlyphRise},
		{vmath.V2(-10, -10), GlyphFall},
	}
	for _, tt := range tests {
		if got := lineGlyph(tt.d); got != tt.want {
			t.Errorf("lineGlyph(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestBuffer_LineNeverOverwritesParticle(t *testing.T) {
	b := newTestBuffer(10, 5)
	b.FillCircle(vmath.V2(28, 24), 2, testViolet, 0.7, 0)
	b.StrokeLine(vmath.V2(4, 24), vmath.V2(60, 24), testCyan, 1)

	c := b.At(3, 1)
	if !c.IsParticle() || c.Rune != GlyphBullet {
		t.Errorf("particle cell overwritten: %+v", c)
	}
}

func TestBuffer_StrongestLineWins(t *testing.T) {
	b := newTestBuffer(10, 5)
	b.StrokeLine(vmath.V2(4, 24), vmath.V2(60, 24), testCyan, 0.9)
	strong := b.At(4, 1)

	b.StrokeLine(vmath.V2(36, 4), vmath.V2(36, 70), testViolet, 0.2)
	if got := b.At(4, 1); got != strong {
		t.Errorf("weaker crossing line replaced stronger: %+v", got)
	}
}

func TestBuffer_OutOfBoundsIgnored(t *testing.T) {
	b := newTestBuffer(4, 2)
	b.FillCircle(vmath.V2(-50, -50), 3, testCyan, 1, 20)
	b.StrokeLine(vmath.V2(-100, -100), vmath.V2(-10, -10), testCyan, 1)
	b.Wash(vmath.V2(1000, 1000), 10, testCyan, 1)

	b.Range(func(x, y int, c Cell) {
		if c.Bg != testBg || c.Rune != ' ' {
			t.Fatalf("cell (%d,%d) touched by off-grid draw", x, y)
		}
	})
}

func TestBuffer_ZeroSizedIsNoop(t *testing.T) {
	b := newTestBuffer(0, 0)
	b.Clear()
	b.FillCircle(vmath.V2(1, 1), 3, testCyan, 1, 20)
	b.StrokeLine(vmath.V2(0, 0), vmath.V2(10, 10), testCyan, 1)
	b.Wash(vmath.V2(0, 0), 100, testCyan, 1)

	visited := 0
	b.Range(func(int, int, Cell) { visited++ })
	if visited != 0 {
		t.Errorf("zero-sized buffer visited %d cells", visited)
	}
}

func TestLayered_RepaintsUnderAfterClear(t *testing.T) {
	b := newTestBuffer(10, 5)
	painted := 0
	l := &Layered{
		Surface: b,
		Under: []Layer{LayerFunc(func(s Surface) {
			painted++
			s.Wash(vmath.V2(40, 40), 30, testViolet, 0.5)
		})},
	}

	l.Clear()
	if painted != 1 {
		t.Fatalf("under-layer painted %d times, want 1", painted)
	}
	if b.At(4, 2).Bg == testBg {
		t.Error("wash from under-layer missing after Clear")
	}
}

func TestBlend(t *testing.T) {
	if got := Blend(testBg, testCyan, 1); got != testCyan {
		t.Errorf("Blend alpha=1 = %v, want src", got)
	}
	if got := Blend(testBg, testCyan, 0); got != testBg {
		t.Errorf("Blend alpha=0 = %v, want dst", got)
	}

	r, g, b := RGB255(Color{R: 1.2, G: -0.1, B: 0.5})
	if r != 255 || g != 0 || b != 128 {
		t.Errorf("RGB255 clamped = (%d,%d,%d)", r, g, b)
	}
}

func TestParseHex(t *testing.T) {
	if _, err := ParseHex("#00f5ff"); err != nil {
		t.Errorf("ParseHex valid: %v", err)
	}
	if _, err := ParseHex("cyan"); err == nil {
		t.Error("ParseHex should reject names")
	}
}
