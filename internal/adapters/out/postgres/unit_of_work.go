// Package postgres provides the GORM-based Unit of Work used when sessions
// are shared between service instances.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, checkout.DefaultPickupPoints)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	session, err := uow.SessionRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	session.Advance()
//	if err := uow.SessionRepository().Update(ctx, session); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Concurrent writers to one session are detected by the repository's
//     version check, not by row locks
package postgres

import (
	"context"
	"slices"

	"checkout/internal/adapters/out/postgres/sessionrepo"
	"checkout/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db           *gorm.DB
	pickupPoints []string
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, checkout.DefaultPickupPoints)
func NewGormUnitOfWorkFactory(db *gorm.DB, pickupPoints []string) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, pickupPoints: slices.Clone(pickupPoints)}
}

// Create produces a new UnitOfWork instance with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:           f.db,
		pickupPoints: f.pickupPoints,
	}
}

// GormUnitOfWork coordinates one database transaction for a business
// operation.
type GormUnitOfWork struct {
	db           *gorm.DB
	tx           *gorm.DB
	pickupPoints []string
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
//
// Returns error if no active transaction exists or if the rollback operation fails.
// Handlers defer it right after Begin and ignore the error it returns
// after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// SessionRepository provides access to session persistence within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) SessionRepository() ports.SessionRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return sessionrepo.NewGormSessionRepository(db, uow.pickupPoints)
}
