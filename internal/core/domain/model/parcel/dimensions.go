package parcel

import (
	"errors"
	"fmt"
	"math"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	// ErrDimensionsAreNotConstructed is returned when Dimensions were not created through NewDimensions.
	ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")
)

// Dimensions holds the physical size and weight of a parcel. Only the weight
// takes part in routing; the sizes are recorded for the carriers.
type Dimensions struct { //nolint:recvcheck //using for validation
	length float64
	width  float64
	height float64
	weight float64
	guard  guard.ConstructorGuard
}

// NewDimensions creates Dimensions. Every measure must be a finite number
// greater than zero; all violations are reported together.
func NewDimensions(length, width, height, weight float64) (Dimensions, error) {
	if err := errors.Join(
		validatePositive("length", length),
		validatePositive("width", width),
		validatePositive("height", height),
		validatePositive("weight", weight),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		length: length,
		width:  width,
		height: height,
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Dimensions were created through NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// Length returns the parcel length.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the parcel width.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the parcel height.
func (d Dimensions) Height() float64 {
	return d.height
}

// Weight returns the parcel weight.
func (d Dimensions) Weight() float64 {
	return d.weight
}

func validatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not greater than 0", v))
	}
	return nil
}
