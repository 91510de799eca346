package commands

import (
	"context"

	"checkout/internal/core/domain/model/checkout"
)

type SetPickupSelectorCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewSetPickupSelectorCommandHandler(uowFactory SessionUoWFactory) SetPickupSelectorCommandHandler {
	return SetPickupSelectorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle shows or hides the selector. The draft is never changed.
func (h *SetPickupSelectorCommandHandler) Handle(ctx context.Context, cmd SetPickupSelectorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateSession(ctx, h.uowFactory, cmd.CheckoutID(), func(session *checkout.Session) error {
		if cmd.Open() {
			session.OpenPickupSelector()
		} else {
			session.ClosePickupSelector()
		}
		return nil
	})
}
