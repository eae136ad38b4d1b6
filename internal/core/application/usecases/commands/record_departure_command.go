package commands

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrRecordDepartureCommandIsNotConstructed = errors.New(
		"RecordDepartureCommand must be created via NewRecordDepartureCommand constructor",
	)
)

// RecordDepartureCommand represents a carrier taking a parcel onto a leg.
type RecordDepartureCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.ParcelID
	legID    string

	guard guard.ConstructorGuard
}

// NewRecordDepartureCommand creates a departure command. The leg ID must not
// be blank; whether it is the expected leg is checked by the parcel itself.
func NewRecordDepartureCommand(parcelID string, legID string) (RecordDepartureCommand, error) {
	cmd := RecordDepartureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setLegID(legID),
	); err != nil {
		return RecordDepartureCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDepartureCommand) Validate() error {
	return c.guard.Validate(ErrRecordDepartureCommandIsNotConstructed)
}

// ParcelID returns the departing parcel.
func (c RecordDepartureCommand) ParcelID() kernel.ParcelID {
	return c.parcelID
}

// LegID returns the leg the parcel departs on.
func (c RecordDepartureCommand) LegID() string {
	return c.legID
}

func (c *RecordDepartureCommand) setParcelID(s string) error {
	id, err := kernel.ParcelIDFromString(s)
	if err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *RecordDepartureCommand) setLegID(legID string) error {
	if strings.TrimSpace(legID) == "" {
		return errs.NewValueIsRequiredError("leg id")
	}
	c.legID = legID
	return nil
}
