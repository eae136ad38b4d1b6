package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var (
	ErrRecordArrivalCommandIsNotConstructed = errors.New(
		"RecordArrivalCommand must be created via NewRecordArrivalCommand constructor",
	)
)

// RecordArrivalCommand represents a carrier putting a parcel down at a
// location. Any location is accepted, including ones not on the route.
type RecordArrivalCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.ParcelID
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewRecordArrivalCommand creates an arrival command.
func NewRecordArrivalCommand(parcelID string, location string) (RecordArrivalCommand, error) {
	cmd := RecordArrivalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setLocation(location),
	); err != nil {
		return RecordArrivalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordArrivalCommand) Validate() error {
	return c.guard.Validate(ErrRecordArrivalCommandIsNotConstructed)
}

// ParcelID returns the arriving parcel.
func (c RecordArrivalCommand) ParcelID() kernel.ParcelID {
	return c.parcelID
}

// Location returns where the parcel arrived.
func (c RecordArrivalCommand) Location() kernel.Location {
	return c.location
}

func (c *RecordArrivalCommand) setParcelID(s string) error {
	id, err := kernel.ParcelIDFromString(s)
	if err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *RecordArrivalCommand) setLocation(name string) error {
	loc, err := kernel.NewLocation(name)
	if err != nil {
		return err
	}
	c.location = loc
	return nil
}
