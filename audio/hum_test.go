package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

func streamPeak(h *Hum, n int) float64 {
	buf := make([][2]float64, 512)
	peak := 0.0
	for done := 0; done < n; done += len(buf) {
		got, ok := h.Stream(buf)
		if !ok || got != len(buf) {
			panic("hum drained")
		}
		for _, s := range buf {
			peak = math.Max(peak, math.Abs(s[0]))
		}
	}
	return peak
}

func TestHum_SilentAtZero(t *testing.T) {
	h := NewHum(beep.SampleRate(48000))
	if peak := streamPeak(h, 48000); peak != 0 {
		t.Errorf("peak at level 0 = %v, want silence", peak)
	}
}

func TestHum_GlidesUpAfterLevel(t *testing.T) {
	h := NewHum(beep.SampleRate(48000))
	h.SetLevel(1)

	peak := streamPeak(h, 48000)
	if peak <= 0 {
		t.Fatal("no output after SetLevel(1)")
	}
	if peak > 0.12+1e-9 {
		t.Errorf("peak %v exceeds max gain", peak)
	}
}

func TestHum_GlidesDownAfterRelease(t *testing.T) {
	h := NewHum(beep.SampleRate(48000))
	h.SetLevel(1)
	streamPeak(h, 48000)

	h.SetLevel(0)
	streamPeak(h, 48000)
	if tail := streamPeak(h, 4800); tail > 1e-6 {
		t.Errorf("tail peak after release = %v, want near silence", tail)
	}
}

func TestHum_LevelClamped(t *testing.T) {
	h := NewHum(beep.SampleRate(48000))
	h.SetLevel(3)
	if h.Level() != 1 {
		t.Errorf("Level() = %v, want 1", h.Level())
	}
	h.SetLevel(-1)
	if h.Level() != 0 {
		t.Errorf("Level() = %v, want 0", h.Level())
	}
	if h.Err() != nil {
		t.Error("Err() should be nil")
	}
}

func TestPlayer_StopWithoutStart(t *testing.T) {
	p := NewPlayer()
	p.Stop()
	p.Stop()
	if p.Hum() == nil {
		t.Fatal("player without hum")
	}
}
