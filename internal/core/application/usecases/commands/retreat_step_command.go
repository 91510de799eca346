package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrRetreatStepCommandIsNotConstructed = errors.New(
		"RetreatStepCommand must be created via NewRetreatStepCommand constructor",
	)
)

// RetreatStepCommand is the "back" action. It never validates.
type RetreatStepCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRetreatStepCommand(checkoutID kernel.UUID) (RetreatStepCommand, error) {
	cmd := RetreatStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCheckoutID(checkoutID); err != nil {
		return RetreatStepCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RetreatStepCommand) Validate() error {
	return c.guard.Validate(ErrRetreatStepCommandIsNotConstructed)
}

func (c RetreatStepCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

func (c *RetreatStepCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}
