// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands so that a zero value can be told apart from a value
// built by its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when
// the caller does not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct was created by its
// constructor. Embed it as an unexported field and call NewConstructorGuard
// only from the constructor:
//
//	type RecordArrivalCommand struct {
//	    parcelID string
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c RecordArrivalCommand) Validate() error {
//	    return c.guard.Validate(ErrRecordArrivalCommandIsNotConstructed)
//	}
//
// The guard is immutable and safe to copy and share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
