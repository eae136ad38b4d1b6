package leg

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	// ErrLegIsNotConstructed is returned when a Leg was not created through NewLeg.
	ErrLegIsNotConstructed = errors.New("Leg must be created via NewLeg constructor")
)

// Tariff is the cost formula of a leg: BaseCost + WeightFactor*weight + ValueFactor*value.
type Tariff struct {
	BaseCost     float64
	WeightFactor float64
	ValueFactor  float64
}

// Validate checks that every component is finite and non-negative.
func (t Tariff) Validate() error {
	return errors.Join(
		validateNonNegative("base cost", t.BaseCost),
		validateNonNegative("weight factor", t.WeightFactor),
		validateNonNegative("value factor", t.ValueFactor),
	)
}

// Leg is a directed transport segment operated by a carrier between two
// locations. It is immutable and identified by its opaque string ID.
//
// Example:
//
//	berlin := kernel.MustNewLocation("Berlin")
//	hamburg := kernel.MustNewLocation("Hamburg")
//	l, err := leg.NewLeg("leg_berlin_hamburg", "DB_Cargo", berlin, hamburg, 1000, 4,
//	    leg.Tariff{BaseCost: 60, WeightFactor: 0.35, ValueFactor: 0.006})
type Leg struct {
	id          string
	operator    string
	from        kernel.Location
	to          kernel.Location
	maxWeight   float64
	transitTime int
	tariff      Tariff
	guard       guard.ConstructorGuard
}

// NewLeg creates a Leg. The ID must be non-blank, origin and destination must
// be valid and distinct, maxWeight must be positive, transitTime non-negative
// and the tariff must pass Tariff.Validate. All violations are reported together.
func NewLeg(
	id string,
	operator string,
	from kernel.Location,
	to kernel.Location,
	maxWeight float64,
	transitTime int,
	tariff Tariff,
) (*Leg, error) {
	l := &Leg{
		operator: operator,
		tariff:   tariff,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setEndpoints(from, to),
		l.setMaxWeight(maxWeight),
		l.setTransitTime(transitTime),
		tariff.Validate(),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the leg was created through NewLeg.
func (l *Leg) Validate() error {
	if l == nil {
		return ErrLegIsNotConstructed
	}
	return l.guard.Validate(ErrLegIsNotConstructed)
}

// ID returns the leg identifier.
func (l *Leg) ID() string {
	return l.id
}

// Operator returns the carrier running the leg. Informational only.
func (l *Leg) Operator() string {
	return l.operator
}

// From returns the origin location.
func (l *Leg) From() kernel.Location {
	return l.from
}

// To returns the destination location.
func (l *Leg) To() kernel.Location {
	return l.to
}

// MaxWeight returns the heaviest parcel the leg accepts.
func (l *Leg) MaxWeight() float64 {
	return l.maxWeight
}

// TransitTime returns the time the leg takes, in hours.
func (l *Leg) TransitTime() int {
	return l.transitTime
}

// Tariff returns the cost formula of the leg.
func (l *Leg) Tariff() Tariff {
	return l.tariff
}

// CanCarry reports whether a parcel of the given weight fits the leg's capacity.
func (l *Leg) CanCarry(weight float64) bool {
	return weight <= l.maxWeight
}

// Cost evaluates the tariff for a parcel of the given weight and declared
// value. It returns +Inf when the parcel is too heavy for the leg.
func (l *Leg) Cost(weight float64, value int64) float64 {
	if !l.CanCarry(weight) {
		return math.Inf(1)
	}
	return l.tariff.BaseCost + l.tariff.WeightFactor*weight + l.tariff.ValueFactor*float64(value)
}

func (l *Leg) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("leg id")
	}
	l.id = id
	return nil
}

func (l *Leg) setEndpoints(from, to kernel.Location) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	if from.IsEqual(to) {
		return errs.NewValueIsInvalidErrorWithCause("leg endpoints",
			fmt.Errorf("%s leads back to itself", from))
	}
	l.from = from
	l.to = to
	return nil
}

func (l *Leg) setMaxWeight(maxWeight float64) error {
	if math.IsNaN(maxWeight) || math.IsInf(maxWeight, 0) || maxWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max weight",
			fmt.Errorf("%v is not a positive number", maxWeight))
	}
	l.maxWeight = maxWeight
	return nil
}

func (l *Leg) setTransitTime(transitTime int) error {
	if transitTime < 0 {
		return errs.NewValueIsInvalidErrorWithCause("transit time",
			fmt.Errorf("%d is negative", transitTime))
	}
	l.transitTime = transitTime
	return nil
}

func validateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a non-negative number", v))
	}
	return nil
}
