package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// RecordDepartureCommandHandler appends a departure to a parcel history.
//
// Errors returned by Handle:
//   - *errs.ObjectNotFoundError when the parcel is unknown
//   - *parcel.LegMismatchError when the leg is not the next expected one
//   - parcel.ErrParcelPickedUp when the parcel was already collected
type RecordDepartureCommandHandler struct {
	parcelRepo ports.ParcelRepository
	clock      Clock
}

// NewRecordDepartureCommandHandler creates a handler for departures.
func NewRecordDepartureCommandHandler(parcelRepo ports.ParcelRepository, clock Clock) RecordDepartureCommandHandler {
	return RecordDepartureCommandHandler{
		parcelRepo: parcelRepo,
		clock:      clock,
	}
}

// Handle records the departure at the current clock time.
func (h RecordDepartureCommandHandler) Handle(ctx context.Context, cmd RecordDepartureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := h.parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	return p.RecordDeparture(cmd.LegID(), h.clock())
}
