package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var (
	ErrSelectPickupPointCommandIsNotConstructed = errors.New(
		"SelectPickupPointCommand must be created via NewSelectPickupPointCommand constructor",
	)
)

// SelectPickupPointCommand chooses one label from the pickup-point catalog.
type SelectPickupPointCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID
	point      string

	guard guard.ConstructorGuard
}

func NewSelectPickupPointCommand(checkoutID kernel.UUID, point string) (SelectPickupPointCommand, error) {
	cmd := SelectPickupPointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCheckoutID(checkoutID),
		cmd.setPoint(point),
	); err != nil {
		return SelectPickupPointCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectPickupPointCommand) Validate() error {
	return c.guard.Validate(ErrSelectPickupPointCommandIsNotConstructed)
}

func (c SelectPickupPointCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

func (c SelectPickupPointCommand) Point() string {
	return c.point
}

func (c *SelectPickupPointCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}

func (c *SelectPickupPointCommand) setPoint(point string) error {
	if point == "" {
		return errs.NewValueIsRequiredError("point")
	}

	c.point = point
	return nil
}
