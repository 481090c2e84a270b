package commands

import (
	"context"

	"studel/internal/core/domain/model/cart"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
	"studel/internal/core/domain/services"
)

// PlaceOrderCommandHandler builds a cart from current catalog data and places the
// order in one transaction, so the price and fee snapshots match what was stored
// when the order committed.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, clock)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown product or zone
//	case errors.Is(err, errs.ErrStateConflict):
//	    // product became unavailable, or products of two vendors were requested
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	checkout   services.Checkout
	clock      kernel.Clock
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory, clock kernel.Clock) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		checkout:   services.NewCheckout(),
		clock:      clock,
	}
}

// Handle places the order and returns it in status Placed.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := cmd.Customer().Require(user.Customer, "place order"); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()

	c := cart.New()
	for _, line := range cmd.Lines() {
		product, err := catalogRepo.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if err = c.Add(product, line.Quantity); err != nil {
			return nil, err
		}
	}

	zone, err := catalogRepo.GetZone(ctx, cmd.ZoneID())
	if err != nil {
		return nil, err
	}

	placed, err := h.checkout.Place(cmd.OrderID(), cmd.Customer(), c, zone, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
