// Package audio provides the optional ambient hum that follows pointer activity.
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/particle-field/parameter"
)

// Player owns the speaker while the hum plays
type Player struct {
	mu          sync.Mutex
	hum         *Hum
	ctrl        *beep.Ctrl
	initialized bool
}

// NewPlayer creates a player for a fresh hum
func NewPlayer() *Player {
	sr := beep.SampleRate(parameter.HumSampleRate)
	return &Player{hum: NewHum(sr)}
}

// Hum returns the streamer whose level the animator drives
func (p *Player) Hum() *Hum {
	return p.hum
}

// Start opens the audio device and begins playback
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	sr := beep.SampleRate(parameter.HumSampleRate)
	if err := speaker.Init(sr, sr.N(parameter.HumBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	p.ctrl = &beep.Ctrl{Streamer: p.hum}
	speaker.Play(p.ctrl)
	p.initialized = true
	return nil
}

// Stop silences playback and releases the device; safe to call multiple times
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
