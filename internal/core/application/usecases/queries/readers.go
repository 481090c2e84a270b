// Package queries contains read-only operations.
// Implements the Query pattern for read operations in the CQRS architecture:
// queries never begin a unit of work and never change state.
package queries

import (
	"context"

	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
	"studel/internal/core/ports"
)

// Read-side views of the repositories. Storage adapters hand out
// non-transactional repositories that satisfy them.
type (
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error)
	}

	UserReader interface {
		Get(ctx context.Context, id string) (*user.User, error)
		ListByRole(ctx context.Context, role user.Role) ([]*user.User, error)
	}

	CatalogReader interface {
		ListVendors(ctx context.Context) ([]catalog.Vendor, error)
		GetVendor(ctx context.Context, id string) (catalog.Vendor, error)
		ListProducts(ctx context.Context, vendorID string) ([]*catalog.Product, error)
		ListZones(ctx context.Context) ([]catalog.DeliveryZone, error)
	}
)
