package commands

import (
	"errors"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrUpdateDraftFieldCommandIsNotConstructed = errors.New(
		"UpdateDraftFieldCommand must be created via NewUpdateDraftFieldCommand constructor",
	)
)

// UpdateDraftFieldCommand is one field-change event of the form: the wire
// name of a draft field and its new raw value.
//
// Example:
//
//	cmd, err := NewUpdateDraftFieldCommand(checkoutID, "email", "anna@example.hu")
//	if err != nil {
//	    return err // unknown field name
//	}
//	err = handler.Handle(ctx, cmd)
type UpdateDraftFieldCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID
	field      checkout.Field
	value      string

	guard guard.ConstructorGuard
}

// NewUpdateDraftFieldCommand validates the id and resolves the field name.
// Enum values are checked by the handler when they are applied.
func NewUpdateDraftFieldCommand(checkoutID kernel.UUID, field string, value string) (UpdateDraftFieldCommand, error) {
	cmd := UpdateDraftFieldCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCheckoutID(checkoutID),
		cmd.setField(field),
	); err != nil {
		return UpdateDraftFieldCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDraftFieldCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDraftFieldCommandIsNotConstructed)
}

func (c UpdateDraftFieldCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

func (c UpdateDraftFieldCommand) Field() checkout.Field {
	return c.field
}

func (c UpdateDraftFieldCommand) Value() string {
	return c.value
}

func (c *UpdateDraftFieldCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}

func (c *UpdateDraftFieldCommand) setField(name string) error {
	field, err := checkout.ParseField(name)
	if err != nil {
		return err
	}

	c.field = field
	return nil
}
