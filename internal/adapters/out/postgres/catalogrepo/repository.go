package catalogrepo

import (
	"context"
	"errors"

	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/ports"
	"studel/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.CatalogRepository = &GormCatalogRepository{}

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) ListVendors(ctx context.Context) ([]catalog.Vendor, error) {
	var dtos []VendorDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	vendors := make([]catalog.Vendor, 0, len(dtos))
	for _, dto := range dtos {
		v, err := vendorToDomain(dto)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}

func (r *GormCatalogRepository) GetVendor(ctx context.Context, id string) (catalog.Vendor, error) {
	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		return catalog.Vendor{}, notFound(err, "vendor", id)
	}
	return vendorToDomain(dto)
}

func (r *GormCatalogRepository) ListProducts(ctx context.Context, vendorID string) ([]*catalog.Product, error) {
	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("category").Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *GormCatalogRepository) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "product", id)
	}
	return productToDomain(dto)
}

// UpdateProduct stores the availability flag; the rest of a product is read-only here.
func (r *GormCatalogRepository) UpdateProduct(ctx context.Context, p *catalog.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", p.ID()).
		Update("is_available", p.IsAvailable())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", p.ID())
	}
	return nil
}

func (r *GormCatalogRepository) ListZones(ctx context.Context) ([]catalog.DeliveryZone, error) {
	var dtos []DeliveryZoneDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]catalog.DeliveryZone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := zoneToDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}

func (r *GormCatalogRepository) GetZone(ctx context.Context, id string) (catalog.DeliveryZone, error) {
	var dto DeliveryZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		return catalog.DeliveryZone{}, notFound(err, "delivery zone", id)
	}
	return zoneToDomain(dto)
}

func (r *GormCatalogRepository) UpdateZone(ctx context.Context, z catalog.DeliveryZone) error {
	dto := zoneFromDomain(z)
	result := r.db.WithContext(ctx).Model(&DeliveryZoneDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "delivery_fee": dto.DeliveryFee})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery zone", dto.ID)
	}
	return nil
}

func (r *GormCatalogRepository) AddVendor(ctx context.Context, v catalog.Vendor) error {
	dto := VendorDTO{ID: v.ID, Name: v.Name, OperatingHours: v.OperatingHours, Image: v.Image}
	return conflict(r.db.WithContext(ctx).Create(&dto).Error, "vendor", v.ID)
}

func (r *GormCatalogRepository) AddProduct(ctx context.Context, p *catalog.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(p)
	err := r.db.WithContext(ctx).Omit("Vendor").Create(&dto).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewObjectNotFoundErrorWithCause("vendor", dto.VendorID, err)
	}
	return conflict(err, "product", dto.ID)
}

func (r *GormCatalogRepository) AddZone(ctx context.Context, z catalog.DeliveryZone) error {
	dto := zoneFromDomain(z)
	return conflict(r.db.WithContext(ctx).Create(&dto).Error, "delivery zone", dto.ID)
}

func notFound(err error, what, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(what, id)
	}
	return err
}

func conflict(err error, what, id string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewStateConflictErrorWithCause(what, id, "already exists", err)
	}
	return err
}
