// Package config loads particle-field settings.
//
// Sources are layered, later ones winning:
//   - built-in defaults (package parameter)
//   - a TOML file, when a path is given
//   - PF_* environment variables
//   - CLI flags the user set explicitly (applied by the command)
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/particle-field/blob"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PF_"

// DefaultLogFile is used when debug logging is on and no path is set
const DefaultLogFile = "logs/particle-field.log"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete particle-field configuration
type Config struct {
	RefreshRate int    `toml:"refresh_rate" env:"REFRESH_RATE"`
	Seed        uint64 `toml:"seed" env:"SEED"` // 0 = time based
	Sound       bool   `toml:"sound" env:"SOUND"`
	Stats       bool   `toml:"stats" env:"STATS"`
	Debug       bool   `toml:"debug" env:"DEBUG"`
	LogFile     string `toml:"log_file" env:"LOG_FILE"`
	Background  string `toml:"background" env:"BACKGROUND"`

	Cell  CellConfig  `toml:"cell" envPrefix:"CELL_"`
	Field FieldConfig `toml:"field" envPrefix:"FIELD_"`
	Blobs BlobConfig  `toml:"blobs" envPrefix:"BLOBS_"`
}

// CellConfig maps surface units onto terminal cells
type CellConfig struct {
	Width  float64 `toml:"width" env:"WIDTH"`
	Height float64 `toml:"height" env:"HEIGHT"`
}

// FieldConfig tunes the particle simulation
type FieldConfig struct {
	Density           float64  `toml:"density" env:"DENSITY"`
	MaxSpeed          float64  `toml:"max_speed" env:"MAX_SPEED"`
	RadiusMin         float64  `toml:"radius_min" env:"RADIUS_MIN"`
	RadiusMax         float64  `toml:"radius_max" env:"RADIUS_MAX"`
	OpacityMin        float64  `toml:"opacity_min" env:"OPACITY_MIN"`
	OpacityMax        float64  `toml:"opacity_max" env:"OPACITY_MAX"`
	RadiusDecay       float64  `toml:"radius_decay" env:"RADIUS_DECAY"`
	RadiusFloor       float64  `toml:"radius_floor" env:"RADIUS_FLOOR"`
	InteractionRadius float64  `toml:"interaction_radius" env:"INTERACTION_RADIUS"`
	Repulsion         float64  `toml:"repulsion" env:"REPULSION"`
	ConnectDistance   float64  `toml:"connect_distance" env:"CONNECT_DISTANCE"`
	GlowBlur          float64  `toml:"glow_blur" env:"GLOW_BLUR"`
	Palette           []string `toml:"palette" env:"PALETTE" envSeparator:","`
	Accent            string   `toml:"accent" env:"ACCENT"`
}

// BlobConfig tunes the gradient backdrop
type BlobConfig struct {
	Enabled     bool    `toml:"enabled" env:"ENABLED"`
	Alpha       float64 `toml:"alpha" env:"ALPHA"`
	RadiusScale float64 `toml:"radius_scale" env:"RADIUS_SCALE"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		RefreshRate: parameter.RefreshRate,
		Background:  parameter.Background,
		Cell: CellConfig{
			Width:  parameter.CellWidth,
			Height: parameter.CellHeight,
		},
		Field: FieldConfig{
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
			Palette:           []string{parameter.PaletteCyan, parameter.PaletteMagenta},
			Accent:            parameter.ConnectAccent,
		},
		Blobs: BlobConfig{
			Enabled:     true,
			Alpha:       parameter.BlobAlpha,
			RadiusScale: parameter.BlobRadiusScale,
		},
	}
}

// Load builds a validated config from defaults, the optional file at path and the environment
func Load(path string) (Config, error) {
	cfg, err := Resolve(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve layers defaults, the optional file at path and the environment without validating
// Callers that overlay further sources validate the final result themselves
func Resolve(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeFile overlays the TOML file onto cfg, rejecting unknown keys
func decodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overlays PF_* environment variables onto cfg
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every problem at once
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.RefreshRate < 1 || c.RefreshRate > parameter.RefreshRateMax {
		bad("refresh_rate %d outside 1..%d", c.RefreshRate, parameter.RefreshRateMax)
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		bad("cell size %vx%v must be positive", c.Cell.Width, c.Cell.Height)
	}
	if _, err := render.ParseHex(c.Background); err != nil {
		bad("background: %v", err)
	}

	f := c.Field
	if f.Density <= 0 {
		bad("field.density %v must be positive", f.Density)
	}
	if f.MaxSpeed < 0 {
		bad("field.max_speed %v must not be negative", f.MaxSpeed)
	}
	if f.RadiusMin <= 0 || f.RadiusMin > f.RadiusMax {
		bad("field.radius range [%v, %v) invalid", f.RadiusMin, f.RadiusMax)
	}
	if f.OpacityMin <= 0 || f.OpacityMin > f.OpacityMax || f.OpacityMax > 1 {
		bad("field.opacity range [%v, %v) invalid", f.OpacityMin, f.OpacityMax)
	}
	if f.RadiusFloor <= 0 {
		bad("field.radius_floor %v must be positive", f.RadiusFloor)
	}
	if f.RadiusDecay < 0 {
		bad("field.radius_decay %v must not be negative", f.RadiusDecay)
	}
	if f.InteractionRadius < 0 || f.ConnectDistance < 0 || f.GlowBlur < 0 {
		bad("field distances must not be negative")
	}
	if len(f.Palette) != 2 {
		bad("field.palette needs exactly 2 colors, got %d", len(f.Palette))
	}
	for _, hex := range f.Palette {
		if _, err := render.ParseHex(hex); err != nil {
			bad("field.palette: %v", err)
		}
	}
	if _, err := render.ParseHex(f.Accent); err != nil {
		bad("field.accent: %v", err)
	}

	if c.Blobs.Alpha < 0 || c.Blobs.Alpha > 1 {
		bad("blobs.alpha %v outside 0..1", c.Blobs.Alpha)
	}
	if c.Blobs.RadiusScale < 0 {
		bad("blobs.radius_scale %v must not be negative", c.Blobs.RadiusScale)
	}

	return errors.Join(errs...)
}

// FrameInterval returns the tick period for the refresh rate
func (c Config) FrameInterval() time.Duration {
	if c.RefreshRate <= 0 {
		return time.Second / parameter.RefreshRate
	}
	return time.Second / time.Duration(c.RefreshRate)
}

// LogPath returns the debug log destination
func (c Config) LogPath() string {
	if c.LogFile == "" {
		return DefaultLogFile
	}
	return c.LogFile
}

// FieldOptions converts the field section; the config must be valid
func (c Config) FieldOptions() (field.Options, error) {
	f := c.Field
	opts := field.Options{
		Density:           f.Density,
		MaxSpeed:          f.MaxSpeed,
		RadiusMin:         f.RadiusMin,
		RadiusMax:         f.RadiusMax,
		OpacityMin:        f.OpacityMin,
		OpacityMax:        f.OpacityMax,
		RadiusDecay:       f.RadiusDecay,
		RadiusFloor:       f.RadiusFloor,
		InteractionRadius: f.InteractionRadius,
		Repulsion:         f.Repulsion,
		ConnectDistance:   f.ConnectDistance,
		GlowBlur:          f.GlowBlur,
	}
	if len(f.Palette) != 2 {
		return field.Options{}, fmt.Errorf("%w: field.palette needs exactly 2 colors", ErrInvalid)
	}
	for i, hex := range f.Palette {
		col, err := render.ParseHex(hex)
		if err != nil {
			return field.Options{}, err
		}
		opts.Palette[i] = col
	}
	accent, err := render.ParseHex(f.Accent)
	if err != nil {
		return field.Options{}, err
	}
	opts.Accent = accent
	return opts, nil
}

// BufferOptions converts the cell and background settings
func (c Config) BufferOptions() (render.BufferOptions, error) {
	bg, err := render.ParseHex(c.Background)
	if err != nil {
		return render.BufferOptions{}, err
	}
	opts := render.DefaultBufferOptions()
	opts.CellWidth = c.Cell.Width
	opts.CellHeight = c.Cell.Height
	opts.Background = bg
	return opts, nil
}

// BlobLayer builds the backdrop layer for the blob section
func (c Config) BlobLayer() *blob.Layer {
	l := blob.NewLayer(blob.Defaults(), c.Blobs.Alpha, c.Blobs.RadiusScale)
	l.SetEnabled(c.Blobs.Enabled)
	return l
}
