// Package input turns host input into immutable event records and the
// normalised signals the motion engine reads.
package input

import "time"

// Kind identifies an input event.
type Kind uint8

const (
	PointerMove Kind = iota
	PointerLeave
	Scroll
)

func (k Kind) String() string {
	switch k {
	case PointerMove:
		return "pointer-move"
	case PointerLeave:
		return "pointer-leave"
	case Scroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Event is one input sample. X and Y are viewport coordinates for pointer
// events; DeltaY is the scroll change in rows for scroll events.
type Event struct {
	Kind   Kind
	X, Y   float64
	DeltaY float64
	At     time.Time
}

// Queue buffers events between frames. Events are drained in delivery order.
// It is owned by the single update loop and is not safe for concurrent use.
type Queue struct {
	events []Event
}

// Push appends e.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.events) }

// Drain returns all pending events and empties the queue.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}
