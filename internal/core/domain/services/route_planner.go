package services

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"slices"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/leg"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
)

// ErrNoRouteFound is returned when no sequence of admissible legs connects
// the origin to the destination.
var ErrNoRouteFound = errors.New("no route found")

// RoutePlanner computes minimum-cost routes over a leg catalog.
//
// The cost of a leg depends on the cargo, see leg.Leg.Cost. Legs that cannot
// carry the parcel's weight are never traversed. Among routes of equal cost
// the planner is deterministic: a location keeps the first predecessor that
// reached it at its lowest cost, and frontier entries of equal cost are
// expanded in the order they were discovered.
//
// Example usage:
//
//	planner := services.NewRoutePlanner(leg.NewBuiltinCatalog())
//	route, err := planner.Plan(berlin, munich, 12.5, 300)
//	if errors.Is(err, services.ErrNoRouteFound) {
//	    // Destination unreachable for this weight
//	}
type RoutePlanner struct {
	catalog *leg.Catalog
}

// NewRoutePlanner creates a RoutePlanner over catalog.
func NewRoutePlanner(catalog *leg.Catalog) *RoutePlanner {
	return &RoutePlanner{catalog: catalog}
}

// Catalog returns the network the planner searches.
func (p *RoutePlanner) Catalog() *leg.Catalog {
	return p.catalog
}

// Plan finds the cheapest route from origin to destination.
//
// Parameters:
//   - origin, destination: constructed locations; they need not be known to the catalog
//   - weight: parcel weight, finite and greater than 0
//   - value: total declared value, at least 0
//
// Returns:
//   - parcel.Route: leg IDs in travel order, the summed cost truncated toward
//     zero and the summed transit time. Empty when origin equals destination.
//   - error: a validation error (see errs.IsInvalidInput) for bad arguments,
//     or ErrNoRouteFound when the destination cannot be reached
func (p *RoutePlanner) Plan(
	origin kernel.Location,
	destination kernel.Location,
	weight float64,
	value int64,
) (parcel.Route, error) {
	if err := validatePlanInput(origin, destination, weight, value); err != nil {
		return parcel.Route{}, err
	}

	if origin.IsEqual(destination) {
		return parcel.NewRoute(nil, 0, 0)
	}

	if !p.catalog.IsEndpoint(destination) {
		return parcel.Route{}, noRouteError(origin, destination, weight)
	}

	best, prev, found := p.search(origin, destination, weight, value)
	if !found {
		return parcel.Route{}, noRouteError(origin, destination, weight)
	}

	var (
		legIDs      []string
		transitTime int
	)
	for at := destination.Name(); at != origin.Name(); {
		l := prev[at]
		legIDs = append(legIDs, l.ID())
		transitTime += l.TransitTime()
		at = l.From().Name()
	}
	slices.Reverse(legIDs)

	return parcel.NewRoute(legIDs, int64(math.Trunc(best)), transitTime)
}

// search runs Dijkstra from origin and stops once destination is settled. It
// returns the cost of the destination and the predecessor leg of every
// reached location.
func (p *RoutePlanner) search(
	origin kernel.Location,
	destination kernel.Location,
	weight float64,
	value int64,
) (float64, map[string]*leg.Leg, bool) {
	best := map[string]float64{origin.Name(): 0}
	prev := make(map[string]*leg.Leg)
	visited := make(map[string]struct{})

	var seq uint64
	frontier := &frontierHeap{}
	heap.Push(frontier, frontierEntry{cost: 0, seq: seq, at: origin})

	for frontier.Len() > 0 {
		cur := heap.Pop(frontier).(frontierEntry)
		if _, ok := visited[cur.at.Name()]; ok {
			continue
		}
		visited[cur.at.Name()] = struct{}{}

		if cur.at.IsEqual(destination) {
			return cur.cost, prev, true
		}

		for _, l := range p.catalog.LegsFrom(cur.at) {
			if !l.CanCarry(weight) {
				continue
			}
			to := l.To().Name()
			if _, ok := visited[to]; ok {
				continue
			}

			cost := cur.cost + l.Cost(weight, value)
			if known, ok := best[to]; ok && cost >= known {
				continue
			}

			best[to] = cost
			prev[to] = l
			seq++
			heap.Push(frontier, frontierEntry{cost: cost, seq: seq, at: l.To()})
		}
	}

	return 0, nil, false
}

func validatePlanInput(origin, destination kernel.Location, weight float64, value int64) error {
	var errList []error
	if err := origin.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("origin", err))
	}
	if err := destination.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("destination", err))
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		errList = append(errList,
			errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight)))
	}
	if value < 0 {
		errList = append(errList,
			errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%d is negative", value)))
	}
	return errors.Join(errList...)
}

func noRouteError(origin, destination kernel.Location, weight float64) error {
	return fmt.Errorf("%w: from %s to %s for weight %v", ErrNoRouteFound, origin, destination, weight)
}

// frontierEntry is a location waiting to be settled, keyed by the cost of
// the path that reached it. seq breaks cost ties in discovery order.
type frontierEntry struct {
	cost float64
	seq  uint64
	at   kernel.Location
}

// frontierHeap is a min-heap of frontier entries. Implements container/heap.Interface.
type frontierHeap []frontierEntry

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x any)   { *h = append(*h, x.(frontierEntry)) }
func (h *frontierHeap) Pop() any {
	old := *h
	entry := old[len(old)-1]
	*h = old[:len(old)-1]
	return entry
}
