package field

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/vmath"
)

// pointer is the tracked pointer position; present=false is the absent sentinel
type pointer struct {
	pos     vmath.Vec2
	present bool
}

// Field is the particle field controller
type Field struct {
	opts Options
	rng  *rand.Rand

	width, height float64
	particles     []Particle
	pointer       pointer

	// Last frame counters
	repelled    int
	connections int
}

// New creates an empty field; rng drives every random draw
func New(opts Options, rng *rand.Rand) *Field {
	return &Field{
		opts: opts,
		rng:  rng,
	}
}

// Initialize creates floor(width*height/Density) particles at uniform random positions
// Replaces any existing particles; a non-positive extent yields none
func (f *Field) Initialize(width, height float64) {
	f.width, f.height = width, height
	f.pointer = pointer{}
	f.repelled, f.connections = 0, 0

	count := 0
	if width > 0 && height > 0 && f.opts.Density > 0 {
		count = int(math.Floor(width * height / f.opts.Density))
	}

	f.particles = make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		p := vmath.V2(f.rng.Float64()*width, f.rng.Float64()*height)
		f.particles = append(f.particles, newParticle(p, &f.opts, f.rng))
	}
}

// Resize updates the bounce and clear extent; particles are not recreated
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
}

// Size returns the current surface extent
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// PointerMove records the pointer position
func (f *Field) PointerMove(x, y float64) {
	f.pointer = pointer{pos: vmath.V2(x, y), present: true}
}

// PointerLeave clears the pointer
func (f *Field) PointerLeave() {
	f.pointer = pointer{}
}

// Pointer returns the pointer position and whether it is present
func (f *Field) Pointer() (vmath.Vec2, bool) {
	return f.pointer.pos, f.pointer.present
}

// SetStyle applies live-tunable options without touching particles
// Particles keep their palette index, so a palette change recolors them
func (f *Field) SetStyle(s Style) {
	f.opts.InteractionRadius = s.InteractionRadius
	f.opts.Repulsion = s.Repulsion
	f.opts.ConnectDistance = s.ConnectDistance
	f.opts.GlowBlur = s.GlowBlur
	f.opts.Palette = s.Palette
	f.opts.Accent = s.Accent
}

// Len returns the particle count
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns the live particle slice in insertion order
// The slice is owned by the field; callers may mutate it between frames
func (f *Field) Particles() []Particle {
	return f.particles
}

// Repelled returns how many particles the pointer nudged in the last Advance
func (f *Field) Repelled() int {
	return f.repelled
}

// Connections returns how many proximity lines the last Render drew
func (f *Field) Connections() int {
	return f.connections
}

// Advance steps every particle by one frame in insertion order
func (f *Field) Advance() {
	f.repelled = 0
	for i := range f.particles {
		if f.step(&f.particles[i]) {
			f.repelled++
		}
	}
}

// step applies drift, pointer nudge, shrink and bounce to p
// Returns true if the pointer nudged p
func (f *Field) step(p *Particle) bool {
	p.Pos = p.Pos.Add(p.Vel)

	nudged := false
	if f.pointer.present {
		away := p.Pos.Sub(f.pointer.pos)
		d := away.Magnitude()
		// d == 0 has no direction; leave the particle in place
		if d < f.opts.InteractionRadius && d > 0 {
			force := (f.opts.InteractionRadius - d) / f.opts.InteractionRadius * f.opts.Repulsion
			p.Pos = p.Pos.Add(away.Normalize().Scale(force))
			nudged = true
		}
	}

	p.Radius = math.Max(f.opts.RadiusFloor, p.Radius-f.opts.RadiusDecay)

	// Re-checked every frame while outside, not only on the crossing frame
	if !vmath.InRange(p.Pos.X, 0, f.width) {
		p.Vel = vmath.ReflectAxisX(p.Vel)
	}
	if !vmath.InRange(p.Pos.Y, 0, f.height) {
		p.Vel = vmath.ReflectAxisY(p.Vel)
	}
	return nudged
}

// Render clears s, draws every particle, then every proximity line
func (f *Field) Render(s render.Surface) {
	s.Clear()

	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.Pos, p.Radius, f.opts.Palette[p.Color], p.Opacity, f.opts.GlowBlur)
	}

	f.connections = 0
	maxD := f.opts.ConnectDistance
	if maxD <= 0 {
		return
	}
	maxSq := maxD * maxD
	for a := 0; a < len(f.particles); a++ {
		pa := f.particles[a].Pos
		for b := a + 1; b < len(f.particles); b++ {
			pb := f.particles[b].Pos
			dSq := vmath.DistanceSq(pa, pb)
			if dSq >= maxSq {
				continue
			}
			s.StrokeLine(pa, pb, f.opts.Accent, LineOpacity(math.Sqrt(dSq), maxD))
			f.connections++
		}
	}
}

// LineOpacity is the proximity line alpha at distance d: 1 at 0, 0 at maxD and beyond
func LineOpacity(d, maxD float64) float64 {
	if d >= maxD {
		return 0
	}
	return 1 - d/maxD
}
