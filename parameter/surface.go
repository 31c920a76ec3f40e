package parameter

// Cell rasterizer
const (
	// CellWidth/CellHeight are surface units per terminal cell, approximating glyph pixels
	CellWidth  = 8.0
	CellHeight = 16.0

	// GlowGain scales particle opacity when tinting neighbor cell backgrounds
	GlowGain = 0.35

	// ParticleCoreBoost brightens the particle glyph over plain opacity blending
	ParticleCoreBoost = 1.4

	// LineGain scales line alpha; a one-unit stroke covers a fraction of a cell
	LineGain = 0.8
)
