package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrFinalizeCheckoutCommandIsNotConstructed = errors.New(
		"FinalizeCheckoutCommand must be created via NewFinalizeCheckoutCommand constructor",
	)
)

// FinalizeCheckoutCommand is the finalize action of the summary step.
//
// Example:
//
//	cmd, _ := NewFinalizeCheckoutCommand(checkoutID)
//	order, err := handler.Handle(ctx, cmd)
//	var validationErr *checkout.ValidationError
//	if errors.As(err, &validationErr) {
//	    // show validationErr.Errors, the session is kept
//	}
type FinalizeCheckoutCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID

	guard guard.ConstructorGuard
}

func NewFinalizeCheckoutCommand(checkoutID kernel.UUID) (FinalizeCheckoutCommand, error) {
	cmd := FinalizeCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCheckoutID(checkoutID); err != nil {
		return FinalizeCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeCheckoutCommandIsNotConstructed)
}

func (c FinalizeCheckoutCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

func (c *FinalizeCheckoutCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}
