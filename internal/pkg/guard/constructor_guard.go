// Package guard provides a small defensive-construction primitive used by
// commands, queries, and value objects to ensure they are only created
// through their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value
// guard is validated with a nil error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was built through its
// constructor or left as a zero value. Embed it in a struct and set it with
// NewConstructorGuard inside the constructor; Validate then distinguishes
// constructed instances from accidental zero values.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
