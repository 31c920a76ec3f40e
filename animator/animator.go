// Package animator drives a particle field frame by frame.
//
// Mount sizes the field and registers the resize and pointer listeners, Run
// advances and renders once per frame tick, Teardown stops the loop and
// removes the listeners. Every field mutation (events, frames, restyles)
// happens on the goroutine executing Run.
package animator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/particle-field/event"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/status"
)

var (
	ErrRunning  = errors.New("animator already running")
	ErrMounted  = errors.New("animator already mounted")
	ErrTornDown = errors.New("animator torn down")
)

// Canvas is the presentable drawing target, sized in surface units
type Canvas interface {
	render.Surface
	Resize(width, height float64)
	Present()
}

// FrameSource delivers one tick per display refresh
type FrameSource interface {
	C() <-chan time.Time
	Stop()
}

// Backdrop is an animated layer painted under the particles
type Backdrop interface {
	render.Layer
	Advance(dt time.Duration)
	Resize(width, height float64)
	SetEnabled(on bool)
	SetLook(alpha, radiusScale float64)
}

// LevelSink receives the normalized pointer activity each frame
type LevelSink interface {
	SetLevel(level float64)
}

// Look is a live restyle applied between frames
type Look struct {
	Style          field.Style
	Backdrop       bool
	BackdropAlpha  float64
	BackdropRadius float64
}

type state uint8

const (
	stateIdle state = iota
	stateMounted
	stateRunning
	stateStopped
)

// Animator runs the frame loop for one field
type Animator struct {
	field   *field.Field
	canvas  Canvas
	surface render.Surface
	router  *event.Router
	frames  FrameSource
	events  <-chan event.Event

	backdrop Backdrop
	level    LevelSink
	restyle  <-chan Look
	log      *zap.Logger

	stats   *status.Registry
	metrics frameMetrics

	mu    sync.Mutex
	state state
	subs  []event.Subscription
	stop  chan struct{}
	done  chan struct{}

	lastTick time.Time
}

// Option configures an Animator
type Option func(*Animator)

// WithBackdrop paints b under the particles after every clear
func WithBackdrop(b Backdrop) Option {
	return func(a *Animator) { a.backdrop = b }
}

// WithLevelSink reports repelled/particle ratio every frame
func WithLevelSink(s LevelSink) Option {
	return func(a *Animator) { a.level = s }
}

// WithRestyle applies looks received on ch between frames
func WithRestyle(ch <-chan Look) Option {
	return func(a *Animator) { a.restyle = ch }
}

// WithStats records frame metrics into r
func WithStats(r *status.Registry) Option {
	return func(a *Animator) { a.stats = r }
}

// WithLogger sets the logger, default no-op
func WithLogger(l *zap.Logger) Option {
	return func(a *Animator) { a.log = l }
}

// New creates an animator; events may be nil when no host feeds input
func New(f *field.Field, canvas Canvas, router *event.Router, frames FrameSource, events <-chan event.Event, opts ...Option) *Animator {
	a := &Animator{
		field:  f,
		canvas: canvas,
		router: router,
		frames: frames,
		events: events,
		log:    zap.NewNop(),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.surface = canvas
	if a.backdrop != nil {
		a.surface = &render.Layered{Surface: canvas, Under: []render.Layer{a.backdrop}}
	}
	if a.stats != nil {
		a.metrics = newFrameMetrics(a.stats)
	}
	return a
}

// Mount sizes the surface, creates the particles and registers the listeners
func (a *Animator) Mount(width, height float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.state {
	case stateStopped:
		return ErrTornDown
	case stateIdle:
	default:
		return ErrMounted
	}

	a.resize(width, height)
	a.field.Initialize(width, height)

	a.subs = append(a.subs,
		a.router.Subscribe(event.EventResize, func(ev event.Event) { a.resize(ev.X, ev.Y) }),
		a.router.Subscribe(event.EventPointerMove, func(ev event.Event) { a.field.PointerMove(ev.X, ev.Y) }),
		a.router.Subscribe(event.EventPointerLeave, func(event.Event) { a.field.PointerLeave() }),
	)
	a.state = stateMounted

	a.log.Debug("field mounted",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Int("particles", a.field.Len()))
	return nil
}

func (a *Animator) resize(width, height float64) {
	a.field.Resize(width, height)
	a.canvas.Resize(width, height)
	if a.backdrop != nil {
		a.backdrop.Resize(width, height)
	}
}

// Run advances and renders once per frame tick until Teardown or ctx ends
// Returns nil after Teardown, ctx.Err() on cancellation; a second call returns ErrRunning
func (a *Animator) Run(ctx context.Context) error {
	a.mu.Lock()
	switch a.state {
	case stateRunning:
		a.mu.Unlock()
		return ErrRunning
	case stateStopped:
		a.mu.Unlock()
		return ErrTornDown
	}
	a.state = stateRunning
	a.mu.Unlock()

	defer close(a.done)

	events := a.events
	ticks := a.frames.C()
	for {
		// Stop wins over anything else that is ready
		select {
		case <-a.stop:
			return nil
		default:
		}

		select {
		case <-a.stop:
			return nil

		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			a.router.Dispatch(ev)

		case look := <-a.restyle:
			a.apply(look)

		case now := <-ticks:
			a.frame(now)
		}
	}
}

// frame runs one advance/render/present cycle
func (a *Animator) frame(now time.Time) {
	var dt time.Duration
	if !a.lastTick.IsZero() {
		dt = now.Sub(a.lastTick)
	}
	a.lastTick = now

	if a.backdrop != nil {
		a.backdrop.Advance(dt)
	}

	a.field.Advance()
	a.field.Render(a.surface)
	a.canvas.Present()

	n := a.field.Len()
	if a.level != nil {
		level := 0.0
		if n > 0 {
			level = float64(a.field.Repelled()) / float64(n)
		}
		a.level.SetLevel(level)
	}
	if a.stats != nil {
		a.metrics.record(a.field, dt)
	}
}

func (a *Animator) apply(l Look) {
	a.field.SetStyle(l.Style)
	if a.backdrop != nil {
		a.backdrop.SetEnabled(l.Backdrop)
		a.backdrop.SetLook(l.BackdropAlpha, l.BackdropRadius)
	}
	a.log.Debug("restyled", zap.Bool("backdrop", l.Backdrop))
}

// Teardown stops the loop, removes every listener Mount registered and stops the frame source
// Idempotent and safe before Run; once it returns no frame renders and no listener fires
func (a *Animator) Teardown() {
	a.mu.Lock()
	if a.state == stateStopped {
		a.mu.Unlock()
		return
	}
	wasRunning := a.state == stateRunning
	a.state = stateStopped
	close(a.stop)
	a.mu.Unlock()

	if wasRunning {
		<-a.done
	}

	a.mu.Lock()
	subs := a.subs
	a.subs = nil
	a.mu.Unlock()

	for _, sub := range subs {
		a.router.Unsubscribe(sub)
	}
	a.frames.Stop()

	a.log.Debug("field torn down", zap.Int("listeners", len(subs)))
}

// Field returns the driven field; only touch it while Run is not executing
func (a *Animator) Field() *field.Field {
	return a.field
}

// frameMetrics caches registry pointers so the loop writes atomics directly
type frameMetrics struct {
	frames      *atomic.Int64
	particles   *atomic.Int64
	connections *atomic.Int64
	repelled    *atomic.Int64
	fps         *status.AtomicFloat
}

func newFrameMetrics(r *status.Registry) frameMetrics {
	// Registration order is overlay order
	return frameMetrics{
		particles:   r.Ints.Get(status.KeyParticles),
		connections: r.Ints.Get(status.KeyConnections),
		repelled:    r.Ints.Get(status.KeyRepelled),
		frames:      r.Ints.Get(status.KeyFrames),
		fps:         r.Floats.Get(status.KeyFPS),
	}
}

func (m frameMetrics) record(f *field.Field, dt time.Duration) {
	m.frames.Add(1)
	m.particles.Store(int64(f.Len()))
	m.connections.Store(int64(f.Connections()))
	m.repelled.Store(int64(f.Repelled()))
	if dt > 0 {
		m.fps.Smooth(float64(time.Second)/float64(dt), parameter.FPSSmoothing)
	}
}
