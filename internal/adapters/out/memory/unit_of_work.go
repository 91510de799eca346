package memory

import (
	"context"
	"errors"
	"slices"

	"checkout/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one SessionStore.
type UnitOfWorkFactory struct {
	store        *SessionStore
	pickupPoints []string
}

func NewUnitOfWorkFactory(store *SessionStore, pickupPoints []string) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store, pickupPoints: slices.Clone(pickupPoints)}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store, pickupPoints: f.pickupPoints}
}

// UnitOfWork stages writes between Begin and Commit. Without Begin every
// write is applied immediately.
type UnitOfWork struct {
	store        *SessionStore
	pickupPoints []string
	active       bool
	staged       []mutation
}

// Begin starts staging. Multiple calls are safe.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit applies the staged writes atomically. A conflicting write fails
// the whole commit and nothing is applied.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	staged := uow.staged
	uow.active, uow.staged = false, nil
	_, err := uow.store.commit(uow, staged)
	return err
}

// Rollback drops the staged writes and the claims they hold.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.active, uow.staged = false, nil
	uow.store.release(uow)
	return nil
}

func (uow *UnitOfWork) SessionRepository() ports.SessionRepository {
	return &sessionRepository{uow: uow}
}

func (uow *UnitOfWork) write(m mutation) error {
	if !uow.active {
		_, err := uow.store.apply(uow, []mutation{m})
		return err
	}

	uow.staged = append(uow.staged, m)
	return nil
}
