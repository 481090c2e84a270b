// Package catalogrepo persists vendors, products and delivery zones with GORM.
package catalogrepo

import (
	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/kernel"
)

type VendorDTO struct {
	ID             string `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	OperatingHours string
	Image          string
}

func (VendorDTO) TableName() string {
	return "vendors"
}

// ProductDTO stores the price in paise.
type ProductDTO struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Price       int64
	Category    string
	IsAvailable bool      `gorm:"not null;default:true"`
	VendorID    string    `gorm:"index;not null"`
	Vendor      VendorDTO `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// DeliveryZoneDTO stores the fee in paise.
type DeliveryZoneDTO struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	DeliveryFee int64
}

func (DeliveryZoneDTO) TableName() string {
	return "delivery_zones"
}

func vendorToDomain(dto VendorDTO) (catalog.Vendor, error) {
	return catalog.NewVendor(dto.ID, dto.Name, dto.OperatingHours, dto.Image)
}

func productFromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Minor(),
		Category:    p.Category(),
		IsAvailable: p.IsAvailable(),
		VendorID:    p.VendorID(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.NewProduct(dto.ID, dto.Name, dto.Description, price, dto.Category, dto.IsAvailable, dto.VendorID)
}

func zoneFromDomain(z catalog.DeliveryZone) DeliveryZoneDTO {
	return DeliveryZoneDTO{ID: z.ID, Name: z.Name, DeliveryFee: z.DeliveryFee.Minor()}
}

func zoneToDomain(dto DeliveryZoneDTO) (catalog.DeliveryZone, error) {
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return catalog.DeliveryZone{}, err
	}
	return catalog.NewDeliveryZone(dto.ID, dto.Name, fee)
}
