package field

import (
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
)

// Options tunes the simulation and its look
type Options struct {
	// Creation
	Density    float64 // surface units² per particle
	MaxSpeed   float64
	RadiusMin  float64
	RadiusMax  float64
	OpacityMin float64
	OpacityMax float64

	// Per-frame
	RadiusDecay       float64
	RadiusFloor       float64
	InteractionRadius float64
	Repulsion         float64

	// Rendering
	ConnectDistance float64
	GlowBlur        float64
	Palette         [2]render.Color
	Accent          render.Color
}

// DefaultOptions returns the stock field tuning
func DefaultOptions() Options {
	return Options{
		Density:           parameter.FieldDensity,
		MaxSpeed:          parameter.ParticleMaxSpeed,
		RadiusMin:         parameter.ParticleRadiusMin,
		RadiusMax:         parameter.ParticleRadiusMax,
		OpacityMin:        parameter.ParticleOpacityMin,
		OpacityMax:        parameter.ParticleOpacityMax,
		RadiusDecay:       parameter.ParticleRadiusDecay,
		RadiusFloor:       parameter.ParticleRadiusFloor,
		InteractionRadius: parameter.PointerInteractionRadius,
		Repulsion:         parameter.PointerRepulsion,
		ConnectDistance:   parameter.ConnectDistance,
		GlowBlur:          parameter.ParticleGlowBlur,
		Palette: [2]render.Color{
			render.MustParseHex(parameter.PaletteCyan),
			render.MustParseHex(parameter.PaletteMagenta),
		},
		Accent: render.MustParseHex(parameter.ConnectAccent),
	}
}

// Style is the subset of Options that can change on a running field
type Style struct {
	InteractionRadius float64
	Repulsion         float64
	ConnectDistance   float64
	GlowBlur          float64
	Palette           [2]render.Color
	Accent            render.Color
}

// Style extracts the live-tunable subset
func (o Options) Style() Style {
	return Style{
		InteractionRadius: o.InteractionRadius,
		Repulsion:         o.Repulsion,
		ConnectDistance:   o.ConnectDistance,
		GlowBlur:          o.GlowBlur,
		Palette:           o.Palette,
		Accent:            o.Accent,
	}
}
