// Package guard provides the constructor guard pattern used by commands,
// queries, and domain objects to detect zero-value instances that bypassed
// their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their constructor functions. Embedding a guard in a struct makes zero-value
// instances detectable: the internal flag is only set by NewConstructorGuard,
// so any struct literal or zero value fails validation.
//
// Example usage:
//
//	type LoginCommand struct {
//	    email    string
//	    password string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewLoginCommand(email, password string) LoginCommand {
//	    return LoginCommand{
//	        email:    email,
//	        password: password,
//	        guard:    guard.NewConstructorGuard(),
//	    }
//	}
//
//	func (c LoginCommand) Validate() error {
//	    return c.guard.Validate(ErrLoginCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
