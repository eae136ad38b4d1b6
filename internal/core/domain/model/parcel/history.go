package parcel

import (
	"fmt"
	"slices"
)

// History is the ordered event log of a parcel. A History value is a
// snapshot: it has no exported mutators and accessors return copies.
type History struct {
	events []Event
}

// NewHistory builds a history from events in occurrence order. Every event
// must be valid and a pickup, if present, must be the last one.
func NewHistory(events ...Event) (History, error) {
	h := History{}
	for _, e := range events {
		next, err := h.append(e)
		if err != nil {
			return History{}, err
		}
		h = next
	}
	return h, nil
}

// Events returns a copy of the events in occurrence order.
func (h History) Events() []Event {
	return slices.Clone(h.events)
}

// Len returns the number of events.
func (h History) Len() int {
	return len(h.events)
}

// Last returns the most recent event.
func (h History) Last() (Event, bool) {
	if len(h.events) == 0 {
		return Event{}, false
	}
	return h.events[len(h.events)-1], true
}

// IsPickedUp reports whether the history ends with a pickup.
func (h History) IsPickedUp() bool {
	last, ok := h.Last()
	return ok && last.kind == KindPickup
}

// Departures counts the departure events.
func (h History) Departures() int {
	n := 0
	for _, e := range h.events {
		if e.kind == KindDeparture {
			n++
		}
	}
	return n
}

// append returns the history extended by e. The receiver's backing array may
// be reused, so callers must own h exclusively.
func (h History) append(e Event) (History, error) {
	if err := e.Validate(); err != nil {
		return h, err
	}
	if h.IsPickedUp() {
		return h, fmt.Errorf("%w: cannot record %s", ErrParcelPickedUp, e.kind)
	}
	h.events = append(h.events, e)
	return h, nil
}

func (h History) clone() History {
	return History{events: slices.Clone(h.events)}
}
