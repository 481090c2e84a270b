package ports

import (
	"context"

	"studel/internal/core/domain/model/catalog"
)

// CatalogRepository exposes vendors, products and delivery zones.
// Lookups of unknown ids return ObjectNotFoundError.
type CatalogRepository interface {
	ListVendors(ctx context.Context) ([]catalog.Vendor, error)
	GetVendor(ctx context.Context, id string) (catalog.Vendor, error)

	// ListProducts returns a vendor's products ordered by category then name.
	ListProducts(ctx context.Context, vendorID string) ([]*catalog.Product, error)
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
	UpdateProduct(ctx context.Context, p *catalog.Product) error

	ListZones(ctx context.Context) ([]catalog.DeliveryZone, error)
	GetZone(ctx context.Context, id string) (catalog.DeliveryZone, error)
	UpdateZone(ctx context.Context, z catalog.DeliveryZone) error

	// AddVendor, AddProduct and AddZone load catalog data; duplicates are a StateConflictError.
	AddVendor(ctx context.Context, v catalog.Vendor) error
	AddProduct(ctx context.Context, p *catalog.Product) error
	AddZone(ctx context.Context, z catalog.DeliveryZone) error
}
