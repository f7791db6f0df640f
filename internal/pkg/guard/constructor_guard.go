// Package guard provides a defensive construction pattern for value objects
// and commands. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so objects that bypass their constructor fail
// validation instead of silently carrying unchecked state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed for a guard that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing object was created through
// a designated constructor function. The zero value is "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
// Call it inside the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
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
