package commands

import (
	"context"

	"checkout/internal/core/domain/model/checkout"
)

type SelectPickupPointCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewSelectPickupPointCommandHandler(uowFactory SessionUoWFactory) SelectPickupPointCommandHandler {
	return SelectPickupPointCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle writes the point into the draft and closes the selector. Labels
// outside the catalog fail with errs.ValueIsInvalidError.
func (h *SelectPickupPointCommandHandler) Handle(ctx context.Context, cmd SelectPickupPointCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateSession(ctx, h.uowFactory, cmd.CheckoutID(), func(session *checkout.Session) error {
		return session.SelectPickupPoint(cmd.Point())
	})
}
