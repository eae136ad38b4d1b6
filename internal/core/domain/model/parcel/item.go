package parcel

import (
	"errors"
	"fmt"
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one declared good inside a parcel. Its value feeds the value
// component of every leg tariff along the route.
type Item struct { //nolint:recvcheck //using for validation
	name  string
	value int64
	guard guard.ConstructorGuard
}

// NewItem creates an Item.
//
// Parameters:
//   - name: description of the good (must not be blank)
//   - value: declared value in whole currency units (must be >= 0)
//
// Returns:
//   - Item: the created item
//   - error: every violated rule, joined
func NewItem(name string, value int64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setValue(value),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the item description.
func (i Item) Name() string {
	return i.name
}

// Value returns the declared value.
func (i Item) Value() int64 {
	return i.value
}

// TotalValue sums the declared values of the items. The sum is the value
// used when pricing a route.
func TotalValue(items []Item) int64 {
	var total int64
	for _, item := range items {
		total += item.value
	}
	return total
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setValue(value int64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item value", fmt.Errorf("%d is negative", value))
	}
	i.value = value
	return nil
}
