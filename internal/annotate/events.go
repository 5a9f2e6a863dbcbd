package annotate

import "golang.org/x/net/html"

// EventKind names a DOM event the model reacts to.
type EventKind string

// Supported events.
const (
	Click       EventKind = "click"
	DoubleClick EventKind = "dblclick"
	Blur        EventKind = "blur"
	KeyDown     EventKind = "keydown"
)

// Event is a user interaction aimed at a node of the document.
type Event struct {
	Kind   EventKind
	Target *html.Node
	Key    string // KeyDown only, e.g. "Enter"
}

// Handler reacts to an event.
type Handler func(Event)

// Dispatcher routes events to the handlers subscribed to their kind, in
// subscription order. It is not safe for concurrent use.
type Dispatcher struct {
	handlers map[EventKind][]Handler
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventKind][]Handler)}
}

// Subscribe registers h for events of kind.
func (d *Dispatcher) Subscribe(kind EventKind, h Handler) {
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Dispatch calls every handler subscribed to ev.Kind.
func (d *Dispatcher) Dispatch(ev Event) {
	for _, h := range d.handlers[ev.Kind] {
		h(ev)
	}
}
