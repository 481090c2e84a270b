package commands

import (
	"errors"
	"strings"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"
	"studel/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderLine is one requested product and its quantity.
type PlaceOrderLine struct {
	ProductID string
	Quantity  int
}

// PlaceOrderCommand represents a customer's checkout: the products to order and
// the delivery zone to drop them at. Prices are not part of the command; they are
// read from the catalog when the command is handled.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customer, "zone2", []PlaceOrderLine{
//	    {ProductID: "item1", Quantity: 2},
//	    {ProductID: "item2", Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	orderID  kernel.UUID
	customer user.Actor
	zoneID   string
	lines    []PlaceOrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the checkout input. An empty line list, a blank
// product id or a quantity below one is a validation error.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customer user.Actor,
	zoneID string,
	lines []PlaceOrderLine,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setZoneID(zoneID),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c PlaceOrderCommand) Customer() user.Actor    { return c.customer }
func (c PlaceOrderCommand) ZoneID() string          { return c.zoneID }
func (c PlaceOrderCommand) Lines() []PlaceOrderLine { return append([]PlaceOrderLine(nil), c.lines...) }

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setZoneID(zoneID string) error {
	zoneID = strings.TrimSpace(zoneID)
	if zoneID == "" {
		return errs.NewValueIsRequiredError("deliveryZoneId")
	}

	c.zoneID = zoneID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []PlaceOrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	cleaned := make([]PlaceOrderLine, 0, len(lines))
	var problems []error
	for _, l := range lines {
		l.ProductID = strings.TrimSpace(l.ProductID)
		if l.ProductID == "" {
			problems = append(problems, errs.NewValueIsRequiredError("items.productId"))
		}
		if l.Quantity < 1 {
			problems = append(problems, errs.NewValueIsOutOfRangeError("items.quantity", l.Quantity, 1, "unbounded"))
		}
		cleaned = append(cleaned, l)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.lines = cleaned
	return nil
}
