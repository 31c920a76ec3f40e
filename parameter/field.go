package parameter

// Particle Field
const (
	// FieldDensity is surface area (units²) per particle; count = floor(w*h/FieldDensity)
	FieldDensity = 9000.0

	// ParticleMaxSpeed bounds each velocity component to [-ParticleMaxSpeed, ParticleMaxSpeed] units per frame
	ParticleMaxSpeed = 1.5

	// ParticleRadiusMin/Max is the initial radius range [min, max)
	ParticleRadiusMin = 1.0
	ParticleRadiusMax = 4.0

	// ParticleOpacityMin/Max is the fixed opacity range [min, max)
	ParticleOpacityMin = 0.2
	ParticleOpacityMax = 0.7

	// ParticleRadiusDecay is subtracted from radius each frame until ParticleRadiusFloor
	ParticleRadiusDecay = 0.1
	ParticleRadiusFloor = 0.2

	// PointerInteractionRadius is the distance within which the pointer nudges particles
	PointerInteractionRadius = 150.0

	// PointerRepulsion scales the per-frame nudge at zero distance
	PointerRepulsion = 2.0

	// ConnectDistance is the proximity line threshold; line alpha = 1 - d/ConnectDistance
	ConnectDistance = 100.0

	// ParticleGlowBlur is the glow spread around each particle in surface units
	ParticleGlowBlur = 20.0
)

// Palette
const (
	PaletteCyan    = "#00f5ff"
	PaletteMagenta = "#ff006e"
	PaletteViolet  = "#8338ec"

	// ConnectAccent is the proximity line color
	ConnectAccent = PaletteCyan

	// Background is the cleared surface color
	Background = "#0a0a0f"
)
