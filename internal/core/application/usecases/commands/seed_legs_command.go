package commands

import (
	"errors"
	"slices"

	"parcels/internal/core/domain/model/leg"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrSeedLegsCommandIsNotConstructed = errors.New(
		"SeedLegsCommand must be created via NewSeedLegsCommand constructor",
	)
)

// SeedLegsCommand fills an empty leg store with a network.
type SeedLegsCommand struct { //nolint:recvcheck //using for validation
	legs []*leg.Leg

	guard guard.ConstructorGuard
}

// NewSeedLegsCommand creates a seed command. At least one leg is required and
// every leg must be constructed.
func NewSeedLegsCommand(legs []*leg.Leg) (SeedLegsCommand, error) {
	if len(legs) == 0 {
		return SeedLegsCommand{}, errs.NewValueIsRequiredError("legs")
	}
	for _, l := range legs {
		if err := l.Validate(); err != nil {
			return SeedLegsCommand{}, err
		}
	}

	return SeedLegsCommand{
		legs:  slices.Clone(legs),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SeedLegsCommand) Validate() error {
	return c.guard.Validate(ErrSeedLegsCommandIsNotConstructed)
}

// Legs returns the legs to store, in definition order.
func (c SeedLegsCommand) Legs() []*leg.Leg {
	return c.legs
}
