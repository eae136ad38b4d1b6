package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/guard"
)

var (
	ErrRegisterParcelCommandIsNotConstructed = errors.New(
		"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
	)
)

// ItemInput is a declared good as supplied by the client.
type ItemInput struct {
	Name  string
	Value int64
}

// RegisterParcelCommand represents a request to hand in a new parcel.
//
// Example:
//
//	cmd, err := NewRegisterParcelCommand(kernel.NewParcelID(), "Berlin", "Munich",
//	    30, 20, 10, 2.5, []ItemInput{{Name: "Book", Value: 20}})
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.ParcelID
	origin      kernel.Location
	destination kernel.Location
	dimensions  parcel.Dimensions
	items       []parcel.Item

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a command to register a parcel. Locations,
// dimensions and items are validated here; whether a route exists is decided
// by the handler. All violations are reported together.
func NewRegisterParcelCommand(
	parcelID kernel.ParcelID,
	from string,
	to string,
	length, width, height, weight float64,
	items []ItemInput,
) (RegisterParcelCommand, error) {
	cmd := RegisterParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setOrigin(from),
		cmd.setDestination(to),
		cmd.setDimensions(length, width, height, weight),
		cmd.setItems(items),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier the parcel will be tracked by.
func (c RegisterParcelCommand) ParcelID() kernel.ParcelID {
	return c.parcelID
}

// Origin returns where the parcel is handed in.
func (c RegisterParcelCommand) Origin() kernel.Location {
	return c.origin
}

// Destination returns where the parcel is collected.
func (c RegisterParcelCommand) Destination() kernel.Location {
	return c.destination
}

// Dimensions returns the parcel's size and weight.
func (c RegisterParcelCommand) Dimensions() parcel.Dimensions {
	return c.dimensions
}

// Items returns the declared goods.
func (c RegisterParcelCommand) Items() []parcel.Item {
	return c.items
}

func (c *RegisterParcelCommand) setParcelID(id kernel.ParcelID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *RegisterParcelCommand) setOrigin(name string) error {
	loc, err := kernel.NewLocation(name)
	if err != nil {
		return err
	}
	c.origin = loc
	return nil
}

func (c *RegisterParcelCommand) setDestination(name string) error {
	loc, err := kernel.NewLocation(name)
	if err != nil {
		return err
	}
	c.destination = loc
	return nil
}

func (c *RegisterParcelCommand) setDimensions(length, width, height, weight float64) error {
	dims, err := parcel.NewDimensions(length, width, height, weight)
	if err != nil {
		return err
	}
	c.dimensions = dims
	return nil
}

func (c *RegisterParcelCommand) setItems(inputs []ItemInput) error {
	items := make([]parcel.Item, 0, len(inputs))
	var errList []error
	for _, in := range inputs {
		item, err := parcel.NewItem(in.Name, in.Value)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.items = items
	return nil
}
