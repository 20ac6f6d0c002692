// Package guard detects domain objects that were not built by their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no
// error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its smart constructor. Go cannot
// hide a struct literal or a zero value from other packages, so every value
// object in the catalog embeds a guard and reports a zero-value instance from
// its Validate method.
//
// Example usage:
//
//	var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")
//
//	type Email struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func (e Email) Validate() error {
//	    return e.guard.Validate(ErrEmailIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation. Only constructors
// should call it.
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
