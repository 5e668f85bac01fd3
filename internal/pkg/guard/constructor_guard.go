// Package guard implements the constructor-guard pattern used by commands,
// queries, and domain objects to detect zero-value instances that bypassed
// their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their designated
// constructor from zero values. Embed it as a private field and set it with
// NewConstructorGuard inside the constructor; Validate then fails for any
// instance that was created by direct struct initialization.
//
// Example:
//
//	type UpdateStockCommand struct {
//	    itemID   kernel.UUID
//	    newStock int
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewUpdateStockCommand(itemID kernel.UUID, newStock int) (UpdateStockCommand, error) {
//	    ...
//	    cmd.guard = guard.NewConstructorGuard()
//	    return cmd, nil
//	}
//
//	func (c UpdateStockCommand) Validate() error {
//	    return c.guard.Validate(ErrUpdateStockCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero-value objects it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
