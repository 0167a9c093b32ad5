package display

import "errors"

// ErrQuit is returned by a frame callback to end the run loop cleanly.
var ErrQuit = errors.New("quit requested")

// EventKind classifies input events.
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventKeyUp
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	}
	return "unknown"
}

// Event is one message from the OS-event adapter to the run loop.
type Event struct {
	Kind EventKind
	Key  string // key name for key events
}

// Queue buffers events between the adapter that produces them and the run
// loop that drains them once per frame. When full, the oldest event is
// dropped so the adapter never blocks.
type Queue struct {
	ch chan Event
}

// NewQueue creates a queue holding up to size events.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{ch: make(chan Event, size)}
}

// Push enqueues ev, discarding the oldest queued event if there is no room.
func (q *Queue) Push(ev Event) {
	for {
		select {
		case q.ch <- ev:
			return
		default:
		}
		select {
		case <-q.ch:
		default:
		}
	}
}

// Drain returns every queued event in arrival order.
func (q *Queue) Drain() []Event {
	var out []Event
	for {
		select {
		case ev := <-q.ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Len reports how many events are waiting.
func (q *Queue) Len() int {
	return len(q.ch)
}
