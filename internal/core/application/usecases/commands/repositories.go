// Package commands contains the write use cases of the checkout wizard.
// Every command follows the same pattern: a constructor-guarded command
// value, a handler that loads the session inside a unit of work, applies one
// state-machine transition and persists the result.
package commands

import (
	"context"

	"checkout/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// SessionUoW manages transactions for session operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   session, err := uow.SessionRepository().Get(ctx, id)
	//   // ... mutate session
	//
	//   err = uow.Commit(ctx)
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	// SessionUoWFactory creates new session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}
)
