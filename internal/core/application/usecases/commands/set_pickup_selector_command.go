package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrSetPickupSelectorCommandIsNotConstructed = errors.New(
		"SetPickupSelectorCommand must be created via NewSetPickupSelectorCommand constructor",
	)
)

// SetPickupSelectorCommand opens or closes the pickup-point selector.
type SetPickupSelectorCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID
	open       bool

	guard guard.ConstructorGuard
}

func NewSetPickupSelectorCommand(checkoutID kernel.UUID, open bool) (SetPickupSelectorCommand, error) {
	cmd := SetPickupSelectorCommand{
		open:  open,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCheckoutID(checkoutID); err != nil {
		return SetPickupSelectorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPickupSelectorCommand) Validate() error {
	return c.guard.Validate(ErrSetPickupSelectorCommandIsNotConstructed)
}

func (c SetPickupSelectorCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

// Open reports whether the selector should be shown.
func (c SetPickupSelectorCommand) Open() bool {
	return c.open
}

func (c *SetPickupSelectorCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}
