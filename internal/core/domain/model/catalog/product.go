package catalog

import (
	"errors"
	"strings"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/pkg/errs"
	"studel/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not built via NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an item a vendor sells. Availability is toggled by the owning
// vendor's staff and only gates new cart additions.
type Product struct {
	id          string
	name        string
	description string
	price       kernel.Money
	category    string
	isAvailable bool
	vendorID    string

	guard guard.ConstructorGuard
}

// NewProduct validates and builds a product.
func NewProduct(
	id, name, description string,
	price kernel.Money,
	category string,
	isAvailable bool,
	vendorID string,
) (*Product, error) {
	p := &Product{
		id:          strings.TrimSpace(id),
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		price:       price,
		category:    strings.TrimSpace(category),
		isAvailable: isAvailable,
		vendorID:    strings.TrimSpace(vendorID),
		guard:       guard.NewConstructorGuard(),
	}

	var problems []error
	if p.id == "" {
		problems = append(problems, errs.NewValueIsRequiredError("product id"))
	}
	if p.name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("product name"))
	}
	if p.vendorID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("vendorId"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate ensures the Product was built through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() string          { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() kernel.Money { return p.price }
func (p *Product) Category() string    { return p.category }
func (p *Product) IsAvailable() bool   { return p.isAvailable }
func (p *Product) VendorID() string    { return p.vendorID }

// SetAvailability switches the product on or off for new orders.
func (p *Product) SetAvailability(available bool) {
	p.isAvailable = available
}
