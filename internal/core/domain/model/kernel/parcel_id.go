package kernel

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"

	"github.com/google/uuid"
)

// ParcelIDMaxLength bounds caller-supplied parcel identifiers.
const ParcelIDMaxLength = 256

// ErrParcelIDIsNotConstructed is returned when a zero-value ParcelID is used.
var ErrParcelIDIsNotConstructed = errs.NewValueIsRequiredError(
	"parcel ID must be created via NewParcelID or ParcelIDFromString")

// ParcelID is the public, opaque identifier of a registered parcel. Freshly
// registered parcels get the hex SHA-256 digest of a random UUID, so the
// identifier handed to the sender reveals nothing about registration order.
// Identifiers received from callers are accepted verbatim.
type ParcelID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewParcelID generates a new pickup identifier.
func NewParcelID() ParcelID {
	sum := sha256.Sum256([]byte(uuid.NewString()))
	return ParcelID{
		value: hex.EncodeToString(sum[:]),
		guard: guard.NewConstructorGuard(),
	}
}

// ParcelIDFromString wraps an identifier supplied by a caller.
func ParcelIDFromString(s string) (ParcelID, error) {
	id := ParcelID{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.setValue(s); err != nil {
		return ParcelID{}, err
	}

	return id, nil
}

// Validate checks that the ParcelID was created through a constructor.
func (id ParcelID) Validate() error {
	return id.guard.Validate(ErrParcelIDIsNotConstructed)
}

// String returns the identifier as handed out to the sender.
func (id ParcelID) String() string {
	return id.value
}

// IsEqual reports whether both identifiers are the same.
func (id ParcelID) IsEqual(other ParcelID) bool {
	return id.value == other.value
}

func (id *ParcelID) setValue(s string) error {
	if strings.TrimSpace(s) == "" {
		return errs.NewValueIsRequiredError("parcel ID")
	}
	if len(s) > ParcelIDMaxLength {
		return errs.NewValueIsOutOfRangeError("parcel ID length", len(s), 1, ParcelIDMaxLength)
	}
	if strings.ContainsAny(s, " \t\r\n/") {
		return errs.NewValueIsInvalidErrorWithCause("parcel ID",
			fmt.Errorf("%q contains whitespace or '/'", s))
	}

	id.value = s
	return nil
}

// MustParcelID is ParcelIDFromString for literals in tests and fixtures. It panics on invalid input.
func MustParcelID(s string) ParcelID {
	id, err := ParcelIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}
