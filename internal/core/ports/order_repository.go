// Package ports defines the persistence and messaging contracts of the ordering
// core. Adapters under internal/adapters implement them; the application layer
// depends only on these interfaces.
package ports

import (
	"context"
	"time"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
)

// OrderFilter narrows List results. Zero fields do not filter.
type OrderFilter struct {
	CustomerID string
	VendorID   string
	RunnerID   string
	// Unassigned keeps only orders with no bound runner.
	Unassigned bool
	Statuses   []order.Status
	// CreatedFrom and CreatedTo bound createdAt as the half-open range [from, to).
	CreatedFrom time.Time
	CreatedTo   time.Time
	// Limit caps the result size; 0 means no limit.
	Limit int
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order with its items and first history entry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns orders matching filter, newest createdAt first.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// UpdateStatus persists the transition just applied to aggregate: status,
	// runner, payment flag and the newest history entry.
	//
	// The write is conditional on the stored status still being expected, which
	// makes concurrent transitions of the same order linearizable:
	//   - StateConflictError when another writer changed the status first
	//   - ObjectNotFoundError when the order does not exist
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
