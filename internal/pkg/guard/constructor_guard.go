// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values can be told apart from instances
// built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error for an unconstructed value.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the owning value was built by its constructor.
//
// Example usage:
//
//	var ErrAdvanceStepCommandIsNotConstructed = errors.New("AdvanceStepCommand must be created via NewAdvanceStepCommand")
//
//	type AdvanceStepCommand struct {
//	    checkoutID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c AdvanceStepCommand) Validate() error {
//	    return c.guard.Validate(ErrAdvanceStepCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it only
// from the constructor of the owning type.
//
// Example:
//
//	func NewAdvanceStepCommand(checkoutID kernel.UUID) (AdvanceStepCommand, error) {
//	    cmd := AdvanceStepCommand{
//	        guard: guard.NewConstructorGuard(),
//	    }
//	    if err := cmd.setCheckoutID(checkoutID); err != nil {
//	        return AdvanceStepCommand{}, err
//	    }
//	    return cmd, nil
//	}
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
//
// Example:
//
//	func (h *AdvanceStepCommandHandler) Handle(ctx context.Context, cmd AdvanceStepCommand) error {
//	    if err := cmd.Validate(); err != nil {
//	        return err
//	    }
//	    // load the session and advance it
//	}
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
