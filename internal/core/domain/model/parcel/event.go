package parcel

import (
	"fmt"
	"strings"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

// Kind tells which lifecycle event an Event carries.
type Kind int

const (
	// KindUnknown marks a zero-value Event.
	KindUnknown Kind = iota

	// KindArrival: the parcel was put down at a location.
	KindArrival

	// KindDeparture: the parcel was taken onto a leg.
	KindDeparture

	// KindPickup: the recipient collected the parcel. Always the last event.
	KindPickup
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindArrival:
		return "Arrival"
	case KindDeparture:
		return "Departure"
	case KindPickup:
		return "Pickup"
	case KindUnknown:
	}
	return "Unknown"
}

// Event is one entry of a parcel history. Only the payload matching Kind is
// set: Location for arrivals, LegID for departures, nothing for a pickup.
type Event struct {
	kind     Kind
	location kernel.Location
	legID    string
	at       time.Time
}

// NewArrivalEvent records that the parcel arrived at loc.
func NewArrivalEvent(loc kernel.Location, at time.Time) (Event, error) {
	if err := loc.Validate(); err != nil {
		return Event{}, err
	}
	if err := validateTimestamp(at); err != nil {
		return Event{}, err
	}
	return Event{kind: KindArrival, location: loc, at: at}, nil
}

// NewDepartureEvent records that the parcel departed on legID.
func NewDepartureEvent(legID string, at time.Time) (Event, error) {
	if strings.TrimSpace(legID) == "" {
		return Event{}, errs.NewValueIsRequiredError("leg id")
	}
	if err := validateTimestamp(at); err != nil {
		return Event{}, err
	}
	return Event{kind: KindDeparture, legID: legID, at: at}, nil
}

// NewPickupEvent records that the parcel was collected.
func NewPickupEvent(at time.Time) (Event, error) {
	if err := validateTimestamp(at); err != nil {
		return Event{}, err
	}
	return Event{kind: KindPickup, at: at}, nil
}

// Validate rejects zero-value events.
func (e Event) Validate() error {
	if e.kind == KindUnknown {
		return errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("kind is %s", e.kind))
	}
	return nil
}

// Kind returns the event kind.
func (e Event) Kind() Kind {
	return e.kind
}

// Location returns the arrival location. Zero for other kinds.
func (e Event) Location() kernel.Location {
	return e.location
}

// LegID returns the departure leg. Empty for other kinds.
func (e Event) LegID() string {
	return e.legID
}

// At returns when the event happened.
func (e Event) At() time.Time {
	return e.at
}

func validateTimestamp(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	return nil
}
