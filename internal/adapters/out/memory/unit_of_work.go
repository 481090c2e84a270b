package memory

import (
	"context"
	"errors"

	"studel/internal/adapters/out/outbox"
	"studel/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoActiveTransaction = errors.New("memory: no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is a serialized transaction over a Store.
type UnitOfWork struct {
	store   *Store
	work    *state
	tracked []outbox.EventSource
}

// Begin takes the store's write lock. A second Begin on an open transaction is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.work != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	uow.store.mu.Lock()
	uow.work = uow.store.state.clone()
	uow.tracked = nil
	return nil
}

// Commit appends the tracked aggregates' events to the outbox, unless the store
// discards events, and publishes the transaction's state.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.work == nil {
		return ErrNoActiveTransaction
	}
	defer uow.release()

	if !uow.store.discardEvents {
		messages, err := outbox.Collect(uow.tracked)
		if err != nil {
			return err
		}
		uow.work.outbox = append(uow.work.outbox, messages...)
	}
	uow.store.state = uow.work

	for _, src := range uow.tracked {
		if c, ok := src.(interface{ ClearDomainEvents() }); ok {
			c.ClearDomainEvents()
		}
	}
	return nil
}

// Rollback drops the transaction's state.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.work == nil {
		return ErrNoActiveTransaction
	}
	uow.release()
	return nil
}

func (uow *UnitOfWork) release() {
	uow.work = nil
	uow.tracked = nil
	uow.store.mu.Unlock()
}

// TrackAggregate registers an aggregate whose events are written on Commit.
// Outside a transaction there is no commit to write them, so it does nothing.
func (uow *UnitOfWork) TrackAggregate(src outbox.EventSource) {
	if uow.work == nil {
		return
	}
	uow.tracked = append(uow.tracked, src)
}

func (uow *UnitOfWork) access() access {
	return txAccess{uow: uow}
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{access: uow.access(), tracker: uow}
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return &UserRepository{access: uow.access()}
}

func (uow *UnitOfWork) CatalogRepository() ports.CatalogRepository {
	return &CatalogRepository{access: uow.access()}
}

func (uow *UnitOfWork) OutboxRepository() ports.OutboxRepository {
	return &OutboxRepository{access: uow.access()}
}

// txAccess resolves at call time: inside Begin/Commit it works on the private
// copy, otherwise it falls through to the committed state.
type txAccess struct{ uow *UnitOfWork }

func (a txAccess) read(fn func(s *state) error) error {
	if a.uow.work == nil {
		return storeAccess{store: a.uow.store}.read(fn)
	}
	return fn(a.uow.work)
}

func (a txAccess) write(fn func(s *state) error) error {
	if a.uow.work == nil {
		return storeAccess{store: a.uow.store}.write(fn)
	}
	return fn(a.uow.work)
}
