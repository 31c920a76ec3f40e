package event

// EventType represents the type of host event
type EventType int

const (
	// EventResize reports a new surface extent
	// Trigger: terminal resize | Payload: Event.X/Event.Y = width/height in surface units
	EventResize EventType = iota + 1

	// EventPointerMove reports the pointer position
	// Trigger: mouse motion | Payload: Event.X/Event.Y = position in surface units
	EventPointerMove

	// EventPointerLeave clears pointer tracking
	// Trigger: terminal focus lost | Payload: none
	EventPointerLeave

	// EventKey reports a key press
	// Trigger: keyboard | Payload: Event.Key, Event.Rune
	EventKey
)

var typeNames = map[EventType]string{
	EventResize:       "Resize",
	EventPointerMove:  "PointerMove",
	EventPointerLeave: "PointerLeave",
	EventKey:          "Key",
}

// String returns the event type name
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Key identifies non-printable keys; printable input uses KeyRune with Event.Rune set
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyCtrlC
)

// Event is a single host event
// Coordinates are in continuous surface units, never cells
type Event struct {
	Type EventType
	X, Y float64
	Key  Key
	Rune rune
}

// Resize creates an EventResize
func Resize(width, height float64) Event {
	return Event{Type: EventResize, X: width, Y: height}
}

// PointerMove creates an EventPointerMove
func PointerMove(x, y float64) Event {
	return Event{Type: EventPointerMove, X: x, Y: y}
}

// PointerLeave creates an EventPointerLeave
func PointerLeave() Event {
	return Event{Type: EventPointerLeave}
}

// KeyPress creates an EventKey
func KeyPress(k Key, r rune) Event {
	return Event{Type: EventKey, Key: k, Rune: r}
}
