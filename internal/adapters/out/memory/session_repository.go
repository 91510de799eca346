package memory

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// sessionRepository reads through the staged writes of its unit of work.
type sessionRepository struct {
	uow *UnitOfWork
}

func (r *sessionRepository) Add(ctx context.Context, session *checkout.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	if _, err := r.snapshot(ctx, session.ID()); err == nil {
		return errs.NewValueIsInvalidErrorWithCause("checkoutID", ErrSessionAlreadyExists)
	}

	return r.uow.write(mutation{
		kind:     mutationAdd,
		id:       session.ID().Bytes(),
		snapshot: session.Snapshot(),
	})
}

func (r *sessionRepository) Update(_ context.Context, session *checkout.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	snapshot := session.Snapshot()
	snapshot.Version = session.Version() + 1

	return r.uow.write(mutation{
		kind:            mutationUpdate,
		id:              session.ID().Bytes(),
		snapshot:        snapshot,
		expectedVersion: session.Version(),
	})
}

func (r *sessionRepository) Get(ctx context.Context, id kernel.UUID) (*checkout.Session, error) {
	snapshot, err := r.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	return checkout.RestoreSession(snapshot, r.uow.pickupPoints)
}

// Delete claims the session inside an active unit of work, so a second
// delete of the same version fails before its caller does anything else.
func (r *sessionRepository) Delete(ctx context.Context, session *checkout.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if _, err := r.snapshot(ctx, session.ID()); err != nil {
		return err
	}

	m := mutation{kind: mutationDelete, id: session.ID().Bytes(), expectedVersion: session.Version()}
	if r.uow.active {
		if err := r.uow.store.claim(r.uow, m.id, m.expectedVersion); err != nil {
			return err
		}
	}
	return r.uow.write(m)
}

// DeleteIdleSince purges sessions last updated before cutoff. The cutoff is
// checked again when the purge is applied, so a session touched in between
// is kept. Inside a unit of work the count is the number of sessions idle
// when the purge was staged.
func (r *sessionRepository) DeleteIdleSince(_ context.Context, cutoff time.Time) (int64, error) {
	ids := r.uow.store.idleSince(r.uow, cutoff)
	mutations := make([]mutation, 0, len(ids))
	for _, id := range ids {
		mutations = append(mutations, mutation{kind: mutationDeleteIdle, id: id, cutoff: cutoff})
	}

	if !r.uow.active {
		return r.uow.store.apply(r.uow, mutations)
	}
	r.uow.staged = append(r.uow.staged, mutations...)
	return int64(len(mutations)), nil
}

// snapshot resolves the latest staged state of id, falling back to the store.
func (r *sessionRepository) snapshot(ctx context.Context, id kernel.UUID) (checkout.Snapshot, error) {
	if err := id.Validate(); err != nil {
		return checkout.Snapshot{}, err
	}

	for i := len(r.uow.staged) - 1; i >= 0; i-- {
		m := r.uow.staged[i]
		if m.id != id.Bytes() {
			continue
		}
		if m.kind == mutationDelete || m.kind == mutationDeleteIdle {
			return checkout.Snapshot{}, errs.NewObjectNotFoundError("checkoutID", id.String())
		}
		return m.snapshot, nil
	}

	return r.uow.store.GetSnapshot(ctx, id)
}
