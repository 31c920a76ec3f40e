package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/particle-field/event"
)

func TestPump_Translate(t *testing.T) {
	p := NewPump(nil, 8, 16)

	tests := []struct {
		name string
		in   tcell.Event
		want event.Event
		ok   bool
	}{
		{"resize", tcell.NewEventResize(100, 30), event.Resize(800, 480), true},
		{"mouse at cell center", tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone), event.PointerMove(28, 40), true},
		{"mouse origin", tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone), event.PointerMove(4, 8), true},
		{"focus lost", tcell.NewEventFocus(false), event.PointerLeave(), true},
		{"focus gained", tcell.NewEventFocus(true), event.Event{}, false},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), event.KeyPress(event.KeyRune, 'q'), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), event.KeyPress(event.KeyEscape, 0), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), event.KeyPress(event.KeyCtrlC, 0), true},
		{"ctrl-c as modified rune", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModCtrl), event.KeyPress(event.KeyCtrlC, 0), true},
		{"unmapped key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), event.Event{}, false},
		{"interrupt", tcell.NewEventInterrupt(nil), event.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Translate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, Prepare(s))
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

// next returns the first pumped event of the wanted type, skipping others
func next(t *testing.T, ch <-chan event.Event, want event.EventType) event.Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			require.True(t, ok, "pump closed waiting for %v", want)
			if ev.Type == want {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %v", want)
		}
	}
}

func TestPump_DeliversScreenEvents(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	p := NewPump(s, 8, 16)
	p.Start()
	defer p.Stop()

	s.InjectMouse(5, 5, tcell.ButtonNone, tcell.ModNone)
	ev := next(t, p.Events(), event.EventPointerMove)
	assert.Equal(t, 44.0, ev.X)
	assert.Equal(t, 88.0, ev.Y)

	require.NoError(t, s.PostEvent(tcell.NewEventFocus(false)))
	next(t, p.Events(), event.EventPointerLeave)

	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	ev = next(t, p.Events(), event.EventKey)
	assert.Equal(t, 'x', ev.Rune)
}

func TestPump_StopIdempotentAndClosesEvents(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	p := NewPump(s, 8, 16)
	p.Start()

	p.Stop()
	p.Stop()

	// Drain anything already translated; the channel must end closed
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-p.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed after Stop")
		}
	}
}
