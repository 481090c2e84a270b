package services

import (
	"time"

	"studel/internal/core/domain/model/cart"
	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checkout is attempted without any product.
var ErrCartIsEmpty = errs.NewValueIsRequiredError("items")

// Checkout is a domain service that places orders from carts.
//
// Business rules:
//   - The cart must not be empty
//   - Prices and product names are copied from the cart at this moment
//   - The delivery fee is the zone's fee at this moment
//
// Example usage:
//
//	c := cart.New()
//	_ = c.Add(dosa, 2)
//	_ = c.Add(idli, 1)
//	o, err := services.NewCheckout().Place(kernel.NewUUID(), customer, c, zone, clock.Now())
type Checkout struct{}

// NewCheckout creates a new Checkout instance.
func NewCheckout() Checkout {
	return Checkout{}
}

// Place creates a new Order in status Placed for customer.
//
// Returns:
//   - *order.Order: the placed order with its StatusChanged event recorded
//   - error: ErrCartIsEmpty, AuthorizationDenied for non-customers, or validation errors
func (Checkout) Place(
	id kernel.UUID,
	customer user.Actor,
	c *cart.Cart,
	zone catalog.DeliveryZone,
	at time.Time,
) (*order.Order, error) {
	if err := customer.Require(user.Customer, "place order"); err != nil {
		return nil, err
	}
	if c == nil || c.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	snapshot := order.Zone{ID: zone.ID, Name: zone.Name, Fee: zone.DeliveryFee}
	return order.NewOrder(id, customer, c.VendorID(), c.Lines(), snapshot, at)
}
