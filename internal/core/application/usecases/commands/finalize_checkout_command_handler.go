package commands

import (
	"context"
	"errors"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/ports"
)

// FinalizeCheckoutCommandHandler hands a completed draft to the order sink
// and discards the session.
//
// The session is claimed before the sink is called, so of two concurrent
// finalizes only one reaches the sink. A sink failure rolls back and the
// customer can retry. A validation failure stores the errors and commits.
type FinalizeCheckoutCommandHandler struct {
	uowFactory SessionUoWFactory
	sink       ports.OrderSink
}

func NewFinalizeCheckoutCommandHandler(uowFactory SessionUoWFactory, sink ports.OrderSink) FinalizeCheckoutCommandHandler {
	return FinalizeCheckoutCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle returns the order that was submitted. Errors:
//   - checkout.ErrNotOnSummaryStep when the session is not on the summary
//   - *checkout.ValidationError when the draft is incomplete
//   - errs.ObjectNotFoundError for unknown or already finalized sessions
//   - errs.VersionIsInvalidError while another finalize holds the session
func (h *FinalizeCheckoutCommandHandler) Handle(
	ctx context.Context,
	cmd FinalizeCheckoutCommand,
) (checkout.FinalizedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return checkout.FinalizedOrder{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return checkout.FinalizedOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	session, err := sessionRepo.Get(ctx, cmd.CheckoutID())
	if err != nil {
		return checkout.FinalizedOrder{}, err
	}

	now := time.Now().UTC()
	order, err := session.Finalize(now)

	var validationErr *checkout.ValidationError
	if errors.As(err, &validationErr) {
		session.Touch(now)
		if err = sessionRepo.Update(ctx, session); err != nil {
			return checkout.FinalizedOrder{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return checkout.FinalizedOrder{}, err
		}
		return checkout.FinalizedOrder{}, validationErr
	}
	if err != nil {
		return checkout.FinalizedOrder{}, err
	}

	if err = sessionRepo.Delete(ctx, session); err != nil {
		return checkout.FinalizedOrder{}, err
	}

	if err = h.sink.Submit(ctx, order); err != nil {
		return checkout.FinalizedOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return checkout.FinalizedOrder{}, err
	}

	return order, nil
}
