package queries

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"parcels/internal/core/domain/services"
)

// PlanRouteQueryHandler quotes routes.
type PlanRouteQueryHandler struct {
	planner RoutePlanner
	catalog LegCatalog
}

// NewPlanRouteQueryHandler creates a handler for route quotes.
func NewPlanRouteQueryHandler(planner RoutePlanner, catalog LegCatalog) PlanRouteQueryHandler {
	return PlanRouteQueryHandler{planner: planner, catalog: catalog}
}

// Handle plans the route. It fails with services.ErrNoRouteFound when the
// destination is unreachable for the cargo.
func (h PlanRouteQueryHandler) Handle(ctx context.Context, query PlanRouteQuery) (PlanRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PlanRouteQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return PlanRouteQueryResponse{}, err
	}

	route, err := h.planner.Plan(query.Origin(), query.Destination(), query.Weight(), query.Value())
	if err != nil {
		return PlanRouteQueryResponse{}, err
	}

	resp := PlanRouteQueryResponse{
		Cost: route.Cost(),
		Time: route.TransitTime(),
		Legs: make([]LegResponse, 0, route.Len()),
	}
	for _, id := range route.LegIDs() {
		l, ok := h.catalog.Leg(id)
		if !ok {
			return PlanRouteQueryResponse{}, fmt.Errorf("planned leg %s is missing from the catalog", id)
		}
		resp.Legs = append(resp.Legs, newLegResponse(l))
	}

	return resp, nil
}

// Explain compares the direct legs between origin and destination with the
// planned route. An unreachable destination is not an error here: the
// response carries no optimal route instead.
func (h PlanRouteQueryHandler) Explain(ctx context.Context, query PlanRouteQuery) (ExplainRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExplainRouteQueryResponse{}, err
	}

	resp := ExplainRouteQueryResponse{DirectOptions: make([]DirectLegOption, 0)}
	for _, l := range h.catalog.Legs() {
		if !l.From().IsEqual(query.Origin()) || !l.To().IsEqual(query.Destination()) || !l.CanCarry(query.Weight()) {
			continue
		}
		resp.DirectOptions = append(resp.DirectOptions, DirectLegOption{
			Leg:  newLegResponse(l),
			Cost: l.Cost(query.Weight(), query.Value()),
			Time: l.TransitTime(),
		})
	}
	sort.SliceStable(resp.DirectOptions, func(i, j int) bool {
		return resp.DirectOptions[i].Cost < resp.DirectOptions[j].Cost
	})

	optimal, err := h.Handle(ctx, query)
	switch {
	case errors.Is(err, services.ErrNoRouteFound):
	case err != nil:
		return ExplainRouteQueryResponse{}, err
	default:
		resp.OptimalRoute = &optimal
	}

	return resp, nil
}
