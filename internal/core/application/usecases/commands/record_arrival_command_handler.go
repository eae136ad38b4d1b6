package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// RecordArrivalCommandHandler appends an arrival to a parcel history.
type RecordArrivalCommandHandler struct {
	parcelRepo ports.ParcelRepository
	clock      Clock
}

// NewRecordArrivalCommandHandler creates a handler for arrivals.
func NewRecordArrivalCommandHandler(parcelRepo ports.ParcelRepository, clock Clock) RecordArrivalCommandHandler {
	return RecordArrivalCommandHandler{
		parcelRepo: parcelRepo,
		clock:      clock,
	}
}

// Handle records the arrival at the current clock time. It fails with
// *errs.ObjectNotFoundError for an unknown parcel and with
// parcel.ErrParcelPickedUp once the parcel has been collected.
func (h RecordArrivalCommandHandler) Handle(ctx context.Context, cmd RecordArrivalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := h.parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	return p.RecordArrival(cmd.Location(), h.clock())
}
