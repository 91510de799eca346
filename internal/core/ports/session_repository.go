// Package ports defines the contracts between the checkout core and its
// adapters: session storage, transactions and the order sink.
package ports

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
)

// SessionRepository defines the persistence contract for checkout sessions.
type SessionRepository interface {
	// Add persists a new session. Adding an id that already exists fails.
	Add(ctx context.Context, session *checkout.Session) error

	// Update persists the session if the stored version still equals
	// session.Version(), and increments the stored version. A mismatch
	// returns an errs.VersionIsInvalidError.
	Update(ctx context.Context, session *checkout.Session) error

	// Get loads a session. Unknown ids return an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*checkout.Session, error)

	// Delete removes the session if the stored version still equals
	// session.Version(). Inside a unit of work the session stays claimed
	// until Commit or Rollback, so a concurrent Delete or Update of it
	// cannot succeed. Unknown ids return an errs.ObjectNotFoundError and a
	// stale or claimed version returns an errs.VersionIsInvalidError.
	Delete(ctx context.Context, session *checkout.Session) error

	// DeleteIdleSince removes every session last updated before cutoff and
	// reports how many were removed.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int64, error)
}

// SessionReader is the read side used by queries. It returns plain
// snapshots and never takes part in a unit of work.
type SessionReader interface {
	GetSnapshot(ctx context.Context, id kernel.UUID) (checkout.Snapshot, error)
}
