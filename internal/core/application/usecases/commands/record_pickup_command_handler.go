package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// RecordPickupCommandHandler appends the terminal pickup event.
type RecordPickupCommandHandler struct {
	parcelRepo ports.ParcelRepository
	clock      Clock
}

// NewRecordPickupCommandHandler creates a handler for pickups.
func NewRecordPickupCommandHandler(parcelRepo ports.ParcelRepository, clock Clock) RecordPickupCommandHandler {
	return RecordPickupCommandHandler{
		parcelRepo: parcelRepo,
		clock:      clock,
	}
}

// Handle records the pickup. A second pickup fails with parcel.ErrParcelPickedUp.
func (h RecordPickupCommandHandler) Handle(ctx context.Context, cmd RecordPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := h.parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	return p.RecordPickup(h.clock())
}
