package kernel

import (
	"fmt"
	"strings"
	"unicode"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// LocationNameMaxLength bounds location names accepted from callers.
const LocationNameMaxLength = 128

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a named node of the transport network, for example "Berlin" or
// "Hub_Central". Names are case-sensitive and compared exactly; the network
// decides which names exist, not this type.
//
// Example:
//
//	loc, err := kernel.NewLocation("Berlin")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Berlin
type Location struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewLocation creates a Location from its name. The name must be non-blank,
// must not carry leading or trailing whitespace, must not contain control
// characters and must not exceed LocationNameMaxLength bytes.
func NewLocation(name string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := loc.setName(name); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MustNewLocation is NewLocation for compile-time constant names. It panics on
// invalid input and is meant for static network definitions and tests.
func MustNewLocation(name string) Location {
	loc, err := NewLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Validate checks that the Location was created through NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Name returns the location name.
func (l Location) Name() string {
	return l.name
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return l.name
}

// IsEqual reports whether both locations carry the same name.
func (l Location) IsEqual(other Location) bool {
	return l.name == other.name
}

func (l *Location) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("location")
	}
	if strings.TrimSpace(name) != name {
		return errs.NewValueIsInvalidErrorWithCause("location",
			fmt.Errorf("%q has leading or trailing whitespace", name))
	}
	if len(name) > LocationNameMaxLength {
		return errs.NewValueIsOutOfRangeError("location length", len(name), 1, LocationNameMaxLength)
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("location",
			fmt.Errorf("%q contains control characters", name))
	}

	l.name = name
	return nil
}
