package queries

import (
	"context"

	"studel/internal/core/domain/model/catalog"
)

// CatalogQueryHandler serves the public catalog: vendors, their products and
// delivery zones. The catalog is a read-only input to ordering and needs no actor.
//
// Example:
//
//	h := NewCatalogQueryHandler(catalogReader)
//	products, err := h.Products(ctx, "vendor1") // ObjectNotFoundError for unknown vendors
type CatalogQueryHandler struct {
	catalog CatalogReader
}

func NewCatalogQueryHandler(catalog CatalogReader) CatalogQueryHandler {
	return CatalogQueryHandler{catalog: catalog}
}

func (h CatalogQueryHandler) Vendors(ctx context.Context) ([]catalog.Vendor, error) {
	return h.catalog.ListVendors(ctx)
}

func (h CatalogQueryHandler) Products(ctx context.Context, vendorID string) ([]*catalog.Product, error) {
	if _, err := h.catalog.GetVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	return h.catalog.ListProducts(ctx, vendorID)
}

func (h CatalogQueryHandler) DeliveryZones(ctx context.Context) ([]catalog.DeliveryZone, error) {
	return h.catalog.ListZones(ctx)
}
