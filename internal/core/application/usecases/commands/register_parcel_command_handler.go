package commands

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
)

// RegisterParcelResult is the quote returned for a registered parcel.
type RegisterParcelResult struct {
	ParcelID string
	Cost     int64
	Time     int
}

// RegisterParcelCommandHandler prices a route for a new parcel and stores it.
//
// Example:
//
//	handler := NewRegisterParcelCommandHandler(planner, parcelRepo)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoRouteFound) {
//	    // Destination unreachable for this parcel
//	}
type RegisterParcelCommandHandler struct {
	planner    RoutePlanner
	parcelRepo ports.ParcelRepository
}

// NewRegisterParcelCommandHandler creates a handler for parcel registration.
func NewRegisterParcelCommandHandler(
	planner RoutePlanner,
	parcelRepo ports.ParcelRepository,
) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		planner:    planner,
		parcelRepo: parcelRepo,
	}
}

// Handle plans the route for the total declared value of the items, builds
// the parcel with an empty history and inserts it. Nothing is stored when
// planning fails or the ID is already taken.
func (h RegisterParcelCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterParcelCommand,
) (RegisterParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterParcelResult{}, err
	}

	route, err := h.planner.Plan(
		cmd.Origin(),
		cmd.Destination(),
		cmd.Dimensions().Weight(),
		parcel.TotalValue(cmd.Items()),
	)
	if err != nil {
		return RegisterParcelResult{}, err
	}

	p, err := parcel.NewParcel(cmd.ParcelID(), cmd.Origin(), cmd.Destination(), cmd.Dimensions(), cmd.Items(), route)
	if err != nil {
		return RegisterParcelResult{}, err
	}

	if err = h.parcelRepo.Add(ctx, p); err != nil {
		return RegisterParcelResult{}, err
	}

	return RegisterParcelResult{
		ParcelID: p.ID().String(),
		Cost:     route.Cost(),
		Time:     route.TransitTime(),
	}, nil
}
