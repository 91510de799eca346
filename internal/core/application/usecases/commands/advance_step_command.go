package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrAdvanceStepCommandIsNotConstructed = errors.New(
		"AdvanceStepCommand must be created via NewAdvanceStepCommand constructor",
	)
)

// AdvanceStepCommand is the "next" action: validate the current step and
// move forward when it is valid.
type AdvanceStepCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceStepCommand(checkoutID kernel.UUID) (AdvanceStepCommand, error) {
	cmd := AdvanceStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCheckoutID(checkoutID); err != nil {
		return AdvanceStepCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStepCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStepCommandIsNotConstructed)
}

func (c AdvanceStepCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

func (c *AdvanceStepCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}
