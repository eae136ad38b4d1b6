package parcel

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route was not created through NewRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
)

// Route is the planned sequence of legs a parcel travels, with the cost and
// time quoted at registration. The leg IDs are opaque here; they are only
// compared against departures.
//
// An empty route is valid: it is what a parcel registered with the same
// origin and destination gets.
type Route struct { //nolint:recvcheck //using for validation
	legIDs      []string
	cost        int64
	transitTime int
	guard       guard.ConstructorGuard
}

// NewRoute creates a Route.
//
// Parameters:
//   - legIDs: leg identifiers in travel order (none may be blank)
//   - cost: total cost, already truncated to an integer (must be >= 0)
//   - transitTime: total transit time in hours (must be >= 0)
//
// Returns:
//   - Route: the created route; it keeps its own copy of legIDs
//   - error: every violated rule, joined
func NewRoute(legIDs []string, cost int64, transitTime int) (Route, error) {
	var errList []error
	for i, id := range legIDs {
		if strings.TrimSpace(id) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("route leg %d", i)))
		}
	}
	if cost < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("route cost", fmt.Errorf("%d is negative", cost)))
	}
	if transitTime < 0 {
		errList = append(errList,
			errs.NewValueIsInvalidErrorWithCause("route time", fmt.Errorf("%d is negative", transitTime)))
	}
	if err := errors.Join(errList...); err != nil {
		return Route{}, err
	}

	return Route{
		legIDs:      slices.Clone(legIDs),
		cost:        cost,
		transitTime: transitTime,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Route was created through NewRoute.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// LegIDs returns a copy of the leg identifiers in travel order.
func (r Route) LegIDs() []string {
	return slices.Clone(r.legIDs)
}

// LegAt returns the i-th leg of the route.
func (r Route) LegAt(i int) (string, bool) {
	if i < 0 || i >= len(r.legIDs) {
		return "", false
	}
	return r.legIDs[i], true
}

// Len returns the number of legs.
func (r Route) Len() int {
	return len(r.legIDs)
}

// IsEmpty reports whether the route has no legs.
func (r Route) IsEmpty() bool {
	return len(r.legIDs) == 0
}

// Cost returns the quoted total cost.
func (r Route) Cost() int64 {
	return r.cost
}

// TransitTime returns the quoted total transit time in hours.
func (r Route) TransitTime() int {
	return r.transitTime
}
