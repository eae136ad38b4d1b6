package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var (
	ErrRecordPickupCommandIsNotConstructed = errors.New(
		"RecordPickupCommand must be created via NewRecordPickupCommand constructor",
	)
)

// RecordPickupCommand represents the recipient collecting a parcel.
type RecordPickupCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.ParcelID

	guard guard.ConstructorGuard
}

// NewRecordPickupCommand creates a pickup command.
func NewRecordPickupCommand(parcelID string) (RecordPickupCommand, error) {
	id, err := kernel.ParcelIDFromString(parcelID)
	if err != nil {
		return RecordPickupCommand{}, err
	}

	return RecordPickupCommand{
		parcelID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPickupCommand) Validate() error {
	return c.guard.Validate(ErrRecordPickupCommandIsNotConstructed)
}

// ParcelID returns the collected parcel.
func (c RecordPickupCommand) ParcelID() kernel.ParcelID {
	return c.parcelID
}
