package field

import (
	"math/rand/v2"

	"github.com/lixenwraith/particle-field/vmath"
)

// Particle is a single drifting dot
type Particle struct {
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Radius  float64
	Opacity float64
	Color   int // palette index, 0 or 1
}

// newParticle spawns a particle at p with randomized velocity, radius, opacity and color
func newParticle(p vmath.Vec2, opts *Options, rng *rand.Rand) Particle {
	return Particle{
		Pos: p,
		Vel: vmath.V2(
			uniform(rng, -opts.MaxSpeed, opts.MaxSpeed),
			uniform(rng, -opts.MaxSpeed, opts.MaxSpeed),
		),
		Radius:  uniform(rng, opts.RadiusMin, opts.RadiusMax),
		Opacity: uniform(rng, opts.OpacityMin, opts.OpacityMax),
		Color:   rng.IntN(len(opts.Palette)),
	}
}

// uniform returns a value in [lo, hi)
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
