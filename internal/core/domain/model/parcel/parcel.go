package parcel

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created through NewParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrParcelPickedUp is returned when an event is recorded after the pickup.
	ErrParcelPickedUp = errors.New("parcel is already picked up")

	// ErrLegMismatch is the sentinel behind LegMismatchError.
	ErrLegMismatch = errors.New("leg does not match the next expected leg")
)

// LegMismatchError reports a departure on a leg other than the next one of
// the route. ExpectedLegID is empty when every leg has already been departed on.
type LegMismatchError struct {
	ParcelID      string
	LegID         string
	ExpectedLegID string
}

func (e *LegMismatchError) Error() string {
	if e.ExpectedLegID == "" {
		return fmt.Sprintf("%s: parcel %s cannot depart on %s, its route is complete",
			ErrLegMismatch, e.ParcelID, e.LegID)
	}
	return fmt.Sprintf("%s: parcel %s cannot depart on %s, expected %s",
		ErrLegMismatch, e.ParcelID, e.LegID, e.ExpectedLegID)
}

func (e *LegMismatchError) Unwrap() error {
	return ErrLegMismatch
}

// Parcel is the aggregate root of one shipment. Everything but the history
// is fixed at registration.
//
// Parcel follows these invariants:
//   - Must have a valid identifier, origin, destination, dimensions and route
//   - The history is append-only and a pickup is always its last event
//   - A departure is only appended when its leg is the next expected leg
//   - Can only be created through NewParcel
//
// A Parcel is safe for concurrent use. One mutex per parcel serializes every
// read and append of the history, so the next-leg check and the append of a
// departure happen atomically. A Parcel must not be copied.
type Parcel struct {
	// mu guards history and departures
	mu sync.Mutex

	id          kernel.ParcelID
	origin      kernel.Location
	destination kernel.Location
	dimensions  Dimensions
	items       []Item
	route       Route

	history History

	// departures is the number of departure events in history. It is the
	// index of the next expected leg in route.
	departures int

	guard guard.ConstructorGuard
}

// NewParcel creates a Parcel with an empty history.
//
// Parameters:
//   - id: public identifier the parcel is tracked by
//   - origin, destination: where the parcel is handed in and collected
//   - dimensions: physical size and weight
//   - items: declared goods; may be empty
//   - route: the planned legs with quoted cost and time
//
// Returns:
//   - *Parcel: the created parcel
//   - error: every invalid argument, joined
//
// Example:
//
//	route, _ := parcel.NewRoute([]string{"leg_berlin_hamburg"}, 96, 4)
//	p, err := parcel.NewParcel(kernel.NewParcelID(),
//	    kernel.MustNewLocation("Berlin"), kernel.MustNewLocation("Hamburg"),
//	    dims, items, route)
func NewParcel(
	id kernel.ParcelID,
	origin kernel.Location,
	destination kernel.Location,
	dimensions Dimensions,
	items []Item,
	route Route,
) (*Parcel, error) {
	errList := []error{
		id.Validate(),
		origin.Validate(),
		destination.Validate(),
		dimensions.Validate(),
		route.Validate(),
	}
	for _, item := range items {
		errList = append(errList, item.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Parcel{
		id:          id,
		origin:      origin,
		destination: destination,
		dimensions:  dimensions,
		items:       slices.Clone(items),
		route:       route,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the parcel was created through NewParcel.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// ID returns the public identifier.
func (p *Parcel) ID() kernel.ParcelID {
	return p.id
}

// Origin returns the location the parcel was handed in at.
func (p *Parcel) Origin() kernel.Location {
	return p.origin
}

// Destination returns the location the parcel is collected at.
func (p *Parcel) Destination() kernel.Location {
	return p.destination
}

// Dimensions returns the physical attributes.
func (p *Parcel) Dimensions() Dimensions {
	return p.dimensions
}

// Items returns a copy of the declared goods.
func (p *Parcel) Items() []Item {
	return slices.Clone(p.items)
}

// Route returns the planned route.
func (p *Parcel) Route() Route {
	return p.route
}

// History returns a snapshot of the event log.
func (p *Parcel) History() History {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.history.clone()
}

// Status returns the status derived from the current history.
func (p *Parcel) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	return DeriveStatus(p.history)
}

// NextExpectedLeg returns the leg the parcel must depart on next, if any.
// There is none once the parcel has been picked up.
func (p *Parcel) NextExpectedLeg() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.nextExpectedLegLocked()
}

// AwaitsLeg reports whether legID is the next expected leg.
func (p *Parcel) AwaitsLeg(legID string) bool {
	next, ok := p.NextExpectedLeg()
	return ok && next == legID
}

func (p *Parcel) nextExpectedLegLocked() (string, bool) {
	if p.history.IsPickedUp() {
		return "", false
	}
	return p.route.LegAt(p.departures)
}

// RecordArrival appends an arrival at loc. Any location is accepted and the
// route does not advance.
//
// Returns:
//   - nil on success
//   - ErrParcelPickedUp if the parcel has been picked up
//   - a validation error for an invalid location or timestamp
func (p *Parcel) RecordArrival(loc kernel.Location, at time.Time) error {
	e, err := NewArrivalEvent(loc, at)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.appendLocked(e)
}

// RecordDeparture appends a departure on legID if it is the next expected leg.
//
// Returns:
//   - nil on success; the next expected leg advances by one
//   - *LegMismatchError if legID is not the next expected leg, history unchanged
//   - ErrParcelPickedUp if the parcel has been picked up
//   - a validation error for a blank leg ID or zero timestamp
func (p *Parcel) RecordDeparture(legID string, at time.Time) error {
	e, err := NewDepartureEvent(legID, at)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := DeriveStatus(p.history).ValidateRecord(); err != nil {
		return err
	}

	expected, ok := p.nextExpectedLegLocked()
	if !ok || expected != legID {
		return &LegMismatchError{
			ParcelID:      p.id.String(),
			LegID:         legID,
			ExpectedLegID: expected,
		}
	}

	return p.appendLocked(e)
}

// RecordPickup appends the terminal pickup event. The route need not be
// complete. A second pickup returns ErrParcelPickedUp.
func (p *Parcel) RecordPickup(at time.Time) error {
	e, err := NewPickupEvent(at)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.appendLocked(e)
}

func (p *Parcel) appendLocked(e Event) error {
	if err := DeriveStatus(p.history).ValidateRecord(); err != nil {
		return err
	}

	next, err := p.history.append(e)
	if err != nil {
		return err
	}

	p.history = next
	if e.kind == KindDeparture {
		p.departures++
	}
	return nil
}
