// Package postgres provides the GORM-based Unit of Work and schema migration.
// The Unit of Work coordinates one database transaction across the order, user,
// catalog and outbox repositories.
//
// Orders written through the unit of work are tracked; Commit converts their
// status events into outbox rows inside the same transaction, so an event is
// stored exactly when the transition that raised it commits.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	// ... perform the transition
//	if err := uow.OrderRepository().UpdateStatus(ctx, o, expected); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Competing status changes are resolved by the conditional update in orderrepo
package postgres

import (
	"context"

	"studel/internal/adapters/out/outbox"
	"studel/internal/adapters/out/postgres/catalogrepo"
	"studel/internal/adapters/out/postgres/orderrepo"
	"studel/internal/adapters/out/postgres/outboxrepo"
	"studel/internal/adapters/out/postgres/userrepo"
	"studel/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		tracked: make([]outbox.EventSource, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks the aggregates
// written in them.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []outbox.EventSource
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

	uow.tracked = uow.tracked[:0]
	return nil
}

// Commit writes the outbox rows of every tracked aggregate, then commits.
// Events are cleared from the aggregates only after a successful commit.
//
// Returns gorm.ErrInvalidTransaction if no active transaction exists.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	messages, err := outbox.Collect(uow.tracked)
	if err != nil {
		return err
	}
	if err = outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, messages...); err != nil {
		return err
	}

	err = uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, src := range uow.tracked {
		if c, ok := src.(interface{ ClearDomainEvents() }); ok {
			c.ClearDomainEvents()
		}
	}
	uow.tracked = uow.tracked[:0]
	return nil
}

// Rollback discards all changes made within the current transaction.
//
// Returns gorm.ErrInvalidTransaction if no active transaction exists, which is
// the case for the deferred Rollback after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = uow.tracked[:0]
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate whose events are written on Commit.
// Called by the order repository on every successful write. Outside a
// transaction there is no commit, so nothing is tracked.
func (uow *GormUnitOfWork) TrackAggregate(src outbox.EventSource) {
	if uow.tx == nil {
		return
	}
	uow.tracked = append(uow.tracked, src)
}
