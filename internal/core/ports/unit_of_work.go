package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Domain events of the orders written through it are stored in the outbox
// as part of Commit.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit writes pending outbox messages and commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction. After Commit it changes nothing.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository

	// UserRepository returns a repository bound to the current transaction.
	UserRepository() UserRepository

	// CatalogRepository returns a repository bound to the current transaction.
	CatalogRepository() CatalogRepository

	// OutboxRepository returns a repository bound to the current transaction.
	OutboxRepository() OutboxRepository
}
