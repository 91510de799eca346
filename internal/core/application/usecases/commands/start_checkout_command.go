package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrStartCheckoutCommandIsNotConstructed = errors.New(
		"StartCheckoutCommand must be created via NewStartCheckoutCommand constructor",
	)
)

// StartCheckoutCommand opens a new, empty checkout session.
//
// Example:
//
//	checkoutID := kernel.NewUUID()
//	cmd, err := NewStartCheckoutCommand(checkoutID)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout id: %w", err)
//	}
//
//	handler := NewStartCheckoutCommandHandler(uowFactory, checkout.DefaultPickupPoints)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start checkout: %w", err)
//	}
type StartCheckoutCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartCheckoutCommand validates the id of the session to create.
func NewStartCheckoutCommand(checkoutID kernel.UUID) (StartCheckoutCommand, error) {
	cmd := StartCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCheckoutID(checkoutID); err != nil {
		return StartCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrStartCheckoutCommandIsNotConstructed)
}

func (c StartCheckoutCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

func (c *StartCheckoutCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}
