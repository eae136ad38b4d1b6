package parcel

import (
	"fmt"
	"time"
)

// TimelineEntry is one rendered line of a tracking timeline.
type TimelineEntry struct {
	At      time.Time
	Message string
}

// NextExpectedLeg returns the leg the parcel must depart on next. After N
// departures that is the N-th leg of the route (0-based); once every leg has
// been departed on there is none. A picked-up parcel expects no leg, even
// with legs left on its route.
//
// Arrivals do not advance the route, so a parcel put down at an unexpected
// location still expects the same leg.
func NextExpectedLeg(h History, r Route) (string, bool) {
	if h.IsPickedUp() {
		return "", false
	}
	return r.LegAt(h.Departures())
}

// TotalStops returns the number of legs on the route.
func TotalStops(r Route) int {
	return r.Len()
}

// RenderTimeline turns the history into human-readable entries in occurrence
// order. It has no side effects; rendering the same history twice yields
// equal results.
func RenderTimeline(h History) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(h.events))
	for _, e := range h.events {
		entries = append(entries, TimelineEntry{At: e.at, Message: Message(e)})
	}
	return entries
}

// Message renders a single event.
func Message(e Event) string {
	switch e.kind {
	case KindArrival:
		return fmt.Sprintf("Arrived at %s", e.location)
	case KindDeparture:
		return fmt.Sprintf("Departed on leg %s", e.legID)
	case KindPickup:
		return "Parcel picked up at final destination"
	case KindUnknown:
	}
	return "Unknown event"
}

// DeriveStatus computes the lifecycle status from the last event.
func DeriveStatus(h History) Status {
	last, ok := h.Last()
	if !ok {
		return Registered
	}

	switch last.kind {
	case KindArrival:
		return Arrived
	case KindDeparture:
		return InTransit
	case KindPickup:
		return PickedUp
	case KindUnknown:
	}
	return Unknown
}
