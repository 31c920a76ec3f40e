package terminal

import "time"

// Ticker paces frames at a fixed refresh rate
// A terminal exposes no vertical refresh signal, so the fixed rate stands in for one
// and the animator measures the real cadence from tick times (DESIGN.md, Frame pacing)
type Ticker struct {
	t *time.Ticker
}

// NewTicker creates a running ticker with the given frame interval
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{t: time.NewTicker(interval)}
}

// C delivers frame ticks
func (t *Ticker) C() <-chan time.Time {
	return t.t.C
}

// Stop stops the ticker; safe to call multiple times
func (t *Ticker) Stop() {
	t.t.Stop()
}
