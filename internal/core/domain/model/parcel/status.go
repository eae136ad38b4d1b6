package parcel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Status is the lifecycle state of a parcel as reported to clients. It is
// never stored: DeriveStatus computes it from the last event of the history.
//
// State transitions:
//
//	Registered ──> InTransit <──> Arrived ──> PickedUp
//	     │                                      ▲
//	     └──────────────────────────────────────┘
//	           (pickup needs no completed legs)
//
// Registered and Arrived may also move to Arrived directly, since arrivals
// are accepted anywhere and at any time.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Registered is the status of a parcel with an empty history.
	Registered

	// InTransit means the last recorded event is a departure.
	InTransit

	// Arrived means the last recorded event is an arrival. The arrival may be
	// at an intermediate stop, not only at the destination.
	Arrived

	// PickedUp is final. No event can follow a pickup.
	PickedUp
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Registered: "registered",
		InTransit:  "in_transit",
		Arrived:    "arrived",
		PickedUp:   "picked_up",
	}
}

// Validate checks that the status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, for example "in_transit".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether no further event may be recorded.
func (s Status) IsFinal() bool {
	return s == PickedUp
}

// ValidateRecord checks that an event may be appended to a parcel in this
// status. It returns ErrParcelPickedUp for final parcels.
func (s Status) ValidateRecord() error {
	if s.IsFinal() {
		return ErrParcelPickedUp
	}
	return s.Validate()
}
