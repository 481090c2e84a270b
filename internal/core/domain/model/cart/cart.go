// Package cart holds the pre-order selection a customer builds before placing an order.
//
// Business rules:
//   - A cart only holds products of a single vendor
//   - Unavailable products cannot be added; quantities already in the cart are kept
//   - Adding a product that is already present increases its quantity
//   - Setting a quantity to zero removes the line
//
// Cart is not safe for concurrent use; it lives for the duration of one request.
package cart

import (
	"fmt"

	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/pkg/errs"
)

type line struct {
	product  *catalog.Product
	quantity int
}

// Cart is an ordered list of product lines for one vendor.
type Cart struct {
	vendorID string
	lines    []line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// VendorID returns the vendor of the products in the cart, or "" when empty.
func (c *Cart) VendorID() string {
	return c.vendorID
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Add puts quantity units of p into the cart.
//
// Returns:
//   - ValueIsOutOfRangeError when quantity < 1
//   - StateConflictError when p is unavailable or belongs to another vendor than
//     the products already in the cart (use ReplaceWith to start over)
func (c *Cart) Add(p *catalog.Product, quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if !p.IsAvailable() {
		return errs.NewStateConflictError("product", p.ID(), "product is not available")
	}
	if c.vendorID != "" && c.vendorID != p.VendorID() {
		return errs.NewStateConflictError("cart", c.vendorID,
			fmt.Sprintf("cart holds products of vendor %s, clear it before adding from %s", c.vendorID, p.VendorID()))
	}

	c.vendorID = p.VendorID()
	for i := range c.lines {
		if c.lines[i].product.ID() == p.ID() {
			c.lines[i].quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, line{product: p, quantity: quantity})
	return nil
}

// ReplaceWith empties the cart and adds p. It is the confirmed answer to a
// vendor conflict returned by Add.
func (c *Cart) ReplaceWith(p *catalog.Product, quantity int) error {
	c.Clear()
	return c.Add(p, quantity)
}

// SetQuantity changes the quantity of an existing line. Zero removes it.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	for i := range c.lines {
		if c.lines[i].product.ID() != productID {
			continue
		}
		if quantity == 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			if len(c.lines) == 0 {
				c.vendorID = ""
			}
			return nil
		}
		c.lines[i].quantity = quantity
		return nil
	}
	return errs.NewObjectNotFoundError("productId", productID)
}

// Remove drops a line. Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	_ = c.SetQuantity(productID, 0)
}

// Clear empties the cart and forgets its vendor.
func (c *Cart) Clear() {
	c.lines = nil
	c.vendorID = ""
}

// Quantity returns the quantity held for productID.
func (c *Cart) Quantity(productID string) int {
	for _, l := range c.lines {
		if l.product.ID() == productID {
			return l.quantity
		}
	}
	return 0
}

// Lines snapshots the cart into order line items, preserving insertion order.
func (c *Cart) Lines() []order.LineItem {
	items := make([]order.LineItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, order.LineItem{
			ProductID: l.product.ID(),
			Name:      l.product.Name(),
			UnitPrice: l.product.Price(),
			Quantity:  l.quantity,
		})
	}
	return items
}

// Total returns the sum of price × quantity over all lines.
func (c *Cart) Total() kernel.Money {
	var total kernel.Money
	for _, item := range c.Lines() {
		total = total.Add(item.Subtotal())
	}
	return total
}
