package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "field.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
	assert.Equal(t, DefaultLogFile, cfg.LogPath())
}

func TestLoad_NoPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
refresh_rate = 30
stats = true

[field]
density = 4500
palette = ["#ffffff", "#000000"]

[blobs]
enabled = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.RefreshRate)
	assert.True(t, cfg.Stats)
	assert.Equal(t, 4500.0, cfg.Field.Density)
	assert.Equal(t, []string{"#ffffff", "#000000"}, cfg.Field.Palette)
	assert.False(t, cfg.Blobs.Enabled)
	// Untouched keys keep defaults
	assert.Equal(t, 150.0, cfg.Field.InteractionRadius)
	assert.Equal(t, 8.0, cfg.Cell.Width)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := writeFile(t, t.TempDir(), "refresh_rat = 30\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Contains(t, err.Error(), "refresh_rat")
}

func TestResolve_SkipsValidation(t *testing.T) {
	path := writeFile(t, t.TempDir(), "refresh_rate = 500\n")

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.RefreshRate)

	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "refresh_rate = 30\n")
	t.Setenv("PF_REFRESH_RATE", "90")
	t.Setenv("PF_FIELD_PALETTE", "#111111,#222222")
	t.Setenv("PF_BLOBS_ALPHA", "0.5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.RefreshRate)
	assert.Equal(t, []string{"#111111", "#222222"}, cfg.Field.Palette)
	assert.Equal(t, 0.5, cfg.Blobs.Alpha)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.RefreshRate = 0
	cfg.Field.Density = 0
	cfg.Field.Palette = []string{"#00f5ff"}
	cfg.Field.Accent = "teal"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	for _, want := range []string{"refresh_rate", "density", "palette", "accent"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"refresh too high", func(c *Config) { c.RefreshRate = 1000 }},
		{"inverted radius", func(c *Config) { c.Field.RadiusMin = 5 }},
		{"opacity above one", func(c *Config) { c.Field.OpacityMax = 1.5 }},
		{"zero floor", func(c *Config) { c.Field.RadiusFloor = 0 }},
		{"zero cell", func(c *Config) { c.Cell.Height = 0 }},
		{"bad background", func(c *Config) { c.Background = "#zz" }},
		{"blob alpha", func(c *Config) { c.Blobs.Alpha = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestFieldOptions_Conversion(t *testing.T) {
	cfg := Default()
	cfg.Field.ConnectDistance = 80

	opts, err := cfg.FieldOptions()
	require.NoError(t, err)

	assert.Equal(t, 80.0, opts.ConnectDistance)
	assert.Equal(t, 9000.0, opts.Density)
	r, g, b := opts.Palette[1].RGB255()
	assert.Equal(t, [3]uint8{0xff, 0x00, 0x6e}, [3]uint8{r, g, b})
}

func TestBufferOptions_Conversion(t *testing.T) {
	cfg := Default()
	cfg.Cell.Width = 10

	opts, err := cfg.BufferOptions()
	require.NoError(t, err)
	assert.Equal(t, 10.0, opts.CellWidth)
	assert.Equal(t, 16.0, opts.CellHeight)
}

func TestBlobLayer_RespectsEnabled(t *testing.T) {
	cfg := Default()
	cfg.Blobs.Enabled = false
	assert.False(t, cfg.BlobLayer().Enabled())
}
