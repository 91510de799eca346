package commands

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
)

// mutateSession runs one load → mutate → store cycle in its own unit of
// work. The session is stored only when mutate returns nil.
func mutateSession(
	ctx context.Context,
	uowFactory SessionUoWFactory,
	id kernel.UUID,
	mutate func(session *checkout.Session) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	session, err := sessionRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = mutate(session); err != nil {
		return err
	}

	session.Touch(time.Now().UTC())
	if err = sessionRepo.Update(ctx, session); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
