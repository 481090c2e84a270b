package memory

import (
	"context"
	"sort"

	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/ports"
	"studel/internal/pkg/errs"
)

var _ ports.CatalogRepository = &CatalogRepository{}

type CatalogRepository struct {
	access access
}

func (r *CatalogRepository) ListVendors(_ context.Context) ([]catalog.Vendor, error) {
	var vendors []catalog.Vendor
	_ = r.access.read(func(s *state) error {
		for _, v := range s.vendors {
			vendors = append(vendors, v)
		}
		return nil
	})
	sort.Slice(vendors, func(i, j int) bool { return vendors[i].ID < vendors[j].ID })
	return vendors, nil
}

func (r *CatalogRepository) GetVendor(_ context.Context, id string) (catalog.Vendor, error) {
	var v catalog.Vendor
	err := r.access.read(func(s *state) error {
		found, ok := s.vendors[id]
		if !ok {
			return errs.NewObjectNotFoundError("vendor", id)
		}
		v = found
		return nil
	})
	return v, err
}

func (r *CatalogRepository) ListProducts(_ context.Context, vendorID string) ([]*catalog.Product, error) {
	var rows []productRow
	_ = r.access.read(func(s *state) error {
		for _, row := range s.products {
			if row.vendorID == vendorID {
				rows = append(rows, row)
			}
		}
		return nil
	})
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].category != rows[j].category {
			return rows[i].category < rows[j].category
		}
		return rows[i].name < rows[j].name
	})

	products := make([]*catalog.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.restore()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *CatalogRepository) GetProduct(_ context.Context, id string) (*catalog.Product, error) {
	var row productRow
	err := r.access.read(func(s *state) error {
		found, ok := s.products[id]
		if !ok {
			return errs.NewObjectNotFoundError("product", id)
		}
		row = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row.restore()
}

func (r *CatalogRepository) UpdateProduct(_ context.Context, p *catalog.Product) error {
	if p == nil {
		return errs.NewValueIsRequiredError("product")
	}
	row := productRowOf(p)
	return r.access.write(func(s *state) error {
		if _, ok := s.products[row.id]; !ok {
			return errs.NewObjectNotFoundError("product", row.id)
		}
		s.products[row.id] = row
		return nil
	})
}

func (r *CatalogRepository) ListZones(_ context.Context) ([]catalog.DeliveryZone, error) {
	var zones []catalog.DeliveryZone
	_ = r.access.read(func(s *state) error {
		for _, z := range s.zones {
			zones = append(zones, z)
		}
		return nil
	})
	sort.Slice(zones, func(i, j int) bool { return zones[i].ID < zones[j].ID })
	return zones, nil
}

func (r *CatalogRepository) GetZone(_ context.Context, id string) (catalog.DeliveryZone, error) {
	var z catalog.DeliveryZone
	err := r.access.read(func(s *state) error {
		found, ok := s.zones[id]
		if !ok {
			return errs.NewObjectNotFoundError("delivery zone", id)
		}
		z = found
		return nil
	})
	return z, err
}

func (r *CatalogRepository) UpdateZone(_ context.Context, z catalog.DeliveryZone) error {
	return r.access.write(func(s *state) error {
		if _, ok := s.zones[z.ID]; !ok {
			return errs.NewObjectNotFoundError("delivery zone", z.ID)
		}
		s.zones[z.ID] = z
		return nil
	})
}

func (r *CatalogRepository) AddVendor(_ context.Context, v catalog.Vendor) error {
	return r.access.write(func(s *state) error {
		if _, ok := s.vendors[v.ID]; ok {
			return errs.NewStateConflictError("vendor", v.ID, "already exists")
		}
		s.vendors[v.ID] = v
		return nil
	})
}

func (r *CatalogRepository) AddProduct(_ context.Context, p *catalog.Product) error {
	if p == nil {
		return errs.NewValueIsRequiredError("product")
	}
	row := productRowOf(p)
	return r.access.write(func(s *state) error {
		if _, ok := s.products[row.id]; ok {
			return errs.NewStateConflictError("product", row.id, "already exists")
		}
		if _, ok := s.vendors[row.vendorID]; !ok {
			return errs.NewObjectNotFoundError("vendor", row.vendorID)
		}
		s.products[row.id] = row
		return nil
	})
}

func (r *CatalogRepository) AddZone(_ context.Context, z catalog.DeliveryZone) error {
	return r.access.write(func(s *state) error {
		if _, ok := s.zones[z.ID]; ok {
			return errs.NewStateConflictError("delivery zone", z.ID, "already exists")
		}
		s.zones[z.ID] = z
		return nil
	})
}
