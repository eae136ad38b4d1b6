package queries

import (
	"errors"
	"fmt"
	"math"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrPlanRouteQueryIsNotConstructed = errors.New(
		"PlanRouteQuery must be created via NewPlanRouteQuery constructor",
	)
)

// PlanRouteQuery asks for the cheapest route and its price without
// registering a parcel.
type PlanRouteQuery struct {
	origin      kernel.Location
	destination kernel.Location
	weight      float64
	value       int64
	guard       guard.ConstructorGuard
}

// NewPlanRouteQuery creates a route query. Weight must be finite and greater
// than 0 and value must not be negative.
func NewPlanRouteQuery(from, to string, weight float64, value int64) (PlanRouteQuery, error) {
	origin, originErr := kernel.NewLocation(from)
	destination, destinationErr := kernel.NewLocation(to)

	var weightErr, valueErr error
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	if value < 0 {
		valueErr = errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%d is negative", value))
	}

	if err := errors.Join(originErr, destinationErr, weightErr, valueErr); err != nil {
		return PlanRouteQuery{}, err
	}

	return PlanRouteQuery{
		origin:      origin,
		destination: destination,
		weight:      weight,
		value:       value,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q PlanRouteQuery) Validate() error {
	return q.guard.Validate(ErrPlanRouteQueryIsNotConstructed)
}

// Origin returns the start location.
func (q PlanRouteQuery) Origin() kernel.Location {
	return q.origin
}

// Destination returns the end location.
func (q PlanRouteQuery) Destination() kernel.Location {
	return q.destination
}

// Weight returns the cargo weight.
func (q PlanRouteQuery) Weight() float64 {
	return q.weight
}

// Value returns the declared cargo value.
func (q PlanRouteQuery) Value() int64 {
	return q.value
}

// PlanRouteQueryResponse is a priced route with the legs it uses, in travel order.
type PlanRouteQueryResponse struct {
	Cost int64
	Time int
	Legs []LegResponse
}

// DirectLegOption is a single leg joining origin and destination that can
// carry the cargo, with its uncapped price.
type DirectLegOption struct {
	Leg  LegResponse
	Cost float64
	Time int
}

// ExplainRouteQueryResponse lists the direct legs, cheapest first, next to the
// route the planner picks. OptimalRoute is nil when no route exists.
type ExplainRouteQueryResponse struct {
	DirectOptions []DirectLegOption
	OptimalRoute  *PlanRouteQueryResponse
}
