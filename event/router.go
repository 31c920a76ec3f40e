package event

import "sync"

// Handler processes a single routed event
type Handler func(Event)

// Subscription identifies one registered handler
// The zero value is never returned by Subscribe
type Subscription struct {
	typ EventType
	id  uint64
}

// Type returns the event type the subscription listens to
func (s Subscription) Type() EventType {
	return s.typ
}

type entry struct {
	id uint64
	fn Handler
}

// Router dispatches events to subscribed handlers
//
// Architecture:
//   - Dispatch is expected from a single goroutine (the animator loop)
//   - Multiple handlers can subscribe to the same event type
//   - Handlers are invoked in subscription order
//   - Handlers may unsubscribe (themselves or others) during dispatch
//
// The mutex only guards the handler table so that subscription management from
// another goroutine (teardown, setup) never races a dispatch
type Router struct {
	mu       sync.Mutex
	handlers map[EventType][]entry
	nextID   uint64
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType][]entry),
	}
}

// Subscribe registers fn for events of type t
func (r *Router) Subscribe(t EventType, fn Handler) Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.handlers[t] = append(r.handlers[t], entry{id: r.nextID, fn: fn})
	return Subscription{typ: t, id: r.nextID}
}

// Unsubscribe removes the handler behind sub
// Returns false if it was already removed; removing twice has no effect
func (r *Router) Unsubscribe(sub Subscription) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.handlers[sub.typ]
	for i, e := range list {
		if e.id != sub.id {
			continue
		}
		// Copy so in-flight dispatch snapshots keep their view
		next := make([]entry, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(r.handlers, sub.typ)
		} else {
			r.handlers[sub.typ] = next
		}
		return true
	}
	return false
}

// Dispatch routes ev to every handler of its type
// A handler unsubscribed by an earlier handler in the same dispatch is skipped
func (r *Router) Dispatch(ev Event) {
	r.mu.Lock()
	snapshot := r.handlers[ev.Type]
	r.mu.Unlock()

	for _, e := range snapshot {
		if !r.active(ev.Type, e.id) {
			continue
		}
		e.fn(ev)
	}
}

func (r *Router) active(t EventType, id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.handlers[t] {
		if e.id == id {
			return true
		}
	}
	return false
}

// HasHandlers returns true if any handlers are subscribed to the given type
func (r *Router) HasHandlers(t EventType) bool {
	return r.HandlerCount(t) > 0
}

// HandlerCount returns the number of handlers subscribed to the given type
func (r *Router) HandlerCount(t EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers[t])
}
