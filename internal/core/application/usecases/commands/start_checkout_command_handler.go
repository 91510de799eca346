package commands

import (
	"context"
	"slices"
	"time"

	"checkout/internal/core/domain/model/checkout"
)

// StartCheckoutCommandHandler creates sessions on the billing step with an
// empty draft and a closed pickup selector over the configured catalog.
type StartCheckoutCommandHandler struct {
	uowFactory   SessionUoWFactory
	pickupPoints []string
}

// NewStartCheckoutCommandHandler creates a handler for new checkouts.
func NewStartCheckoutCommandHandler(uowFactory SessionUoWFactory, pickupPoints []string) StartCheckoutCommandHandler {
	return StartCheckoutCommandHandler{
		uowFactory:   uowFactory,
		pickupPoints: slices.Clone(pickupPoints),
	}
}

// Handle creates and stores the session.
func (h *StartCheckoutCommandHandler) Handle(ctx context.Context, cmd StartCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := checkout.NewSession(cmd.CheckoutID(), h.pickupPoints, time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SessionRepository().Add(ctx, session); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
