package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/status"
	"github.com/lixenwraith/particle-field/vmath"
)

// Hum is an endless two-partial drone whose loudness follows a target level
// SetLevel is called from the frame loop, Stream from the speaker goroutine
type Hum struct {
	sr     beep.SampleRate
	target status.AtomicFloat

	// Speaker goroutine only
	pos  int
	gain float64
}

// NewHum creates a silent hum at the given sample rate
func NewHum(sr beep.SampleRate) *Hum {
	return &Hum{sr: sr}
}

// SetLevel sets the target loudness, clamped to [0, 1]
func (h *Hum) SetLevel(level float64) {
	h.target.Set(vmath.Clamp01(level))
}

// Level returns the target loudness
func (h *Hum) Level() float64 {
	return h.target.Get()
}

// Stream implements beep.Streamer; never drains
func (h *Hum) Stream(samples [][2]float64) (n int, ok bool) {
	target := h.target.Get() * parameter.HumMaxGain
	rate := float64(h.sr)
	for i := range samples {
		// Glide avoids clicks when the level jumps between frames
		h.gain += (target - h.gain) * parameter.HumGlide

		t := float64(h.pos) / rate
		v := 0.6*math.Sin(2*math.Pi*parameter.HumBaseFreq*t) +
			0.4*math.Sin(2*math.Pi*parameter.HumFifthFreq*t)
		v *= h.gain

		samples[i][0] = v
		samples[i][1] = v
		h.pos++
	}
	// Wrap at a whole number of seconds; both partials are integral Hz
	if h.pos >= int(rate)*60 {
		h.pos -= int(rate) * 60
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (h *Hum) Err() error {
	return nil
}
