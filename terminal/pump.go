package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-field/event"
	"github.com/lixenwraith/particle-field/parameter"
)

// Pump translates tcell events into surface-unit events
// Terminals have no pointer-leave signal; losing focus stands in for it
type Pump struct {
	screen       tcell.Screen
	cellW, cellH float64

	raw  chan tcell.Event
	out  chan event.Event
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// NewPump creates a pump; call Start to begin polling
func NewPump(screen tcell.Screen, cellW, cellH float64) *Pump {
	return &Pump{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		raw:    make(chan tcell.Event, parameter.EventBufferSize),
		out:    make(chan event.Event, parameter.EventBufferSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Events delivers translated events; closed after Stop
func (p *Pump) Events() <-chan event.Event {
	return p.out
}

// Start begins polling the screen
func (p *Pump) Start() {
	go p.screen.ChannelEvents(p.raw, p.quit)
	go p.translate()
}

// Stop ends polling and waits for the translator; safe to call multiple times
func (p *Pump) Stop() {
	p.once.Do(func() {
		close(p.quit)
		<-p.done
	})
}

func (p *Pump) translate() {
	defer close(p.done)
	defer close(p.out)

	for {
		select {
		case <-p.quit:
			return
		case ev, ok := <-p.raw:
			if !ok {
				return
			}
			out, ok := p.Translate(ev)
			if !ok {
				continue
			}
			select {
			case p.out <- out:
			case <-p.quit:
				return
			}
		}
	}
}

// Translate maps one tcell event; ok is false for events the field ignores
func (p *Pump) Translate(ev tcell.Event) (out event.Event, ok bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return event.Resize(float64(cols)*p.cellW, float64(rows)*p.cellH), true

	case *tcell.EventMouse:
		x, y := ev.Position()
		// Cell center
		return event.PointerMove((float64(x)+0.5)*p.cellW, (float64(y)+0.5)*p.cellH), true

	case *tcell.EventFocus:
		if ev.Focused {
			return event.Event{}, false
		}
		return event.PointerLeave(), true

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
				return event.KeyPress(event.KeyCtrlC, 0), true
			}
			return event.KeyPress(event.KeyRune, ev.Rune()), true
		case tcell.KeyEscape:
			return event.KeyPress(event.KeyEscape, 0), true
		case tcell.KeyEnter:
			return event.KeyPress(event.KeyEnter, 0), true
		case tcell.KeyCtrlC:
			return event.KeyPress(event.KeyCtrlC, 0), true
		}
	}
	return event.Event{}, false
}
