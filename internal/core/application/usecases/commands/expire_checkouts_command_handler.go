package commands

import (
	"context"
	"time"
)

// ExpireCheckoutsCommandHandler removes abandoned sessions. It is run
// periodically by the session expiry job.
type ExpireCheckoutsCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewExpireCheckoutsCommandHandler(uowFactory SessionUoWFactory) ExpireCheckoutsCommandHandler {
	return ExpireCheckoutsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes every session last updated more than IdleFor ago and
// returns how many were deleted.
func (h *ExpireCheckoutsCommandHandler) Handle(ctx context.Context, cmd ExpireCheckoutsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.IdleFor())
	removed, err := uow.SessionRepository().DeleteIdleSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
