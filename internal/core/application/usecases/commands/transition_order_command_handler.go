package commands

import (
	"context"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
)

// TransitionOrderCommandHandler performs one read-modify-write of an order.
//
// The order is read, the action is applied in memory (role, ownership and state
// checks happen there, before anything is written), and the result is stored with
// a compare-and-swap on the status observed at read time. A concurrent writer that
// committed in between turns the write into a StateConflictError and nothing of
// this attempt is persisted.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle applies the command's action and returns the updated order.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	expected := o.Status()
	if err = o.Perform(cmd.Action(), cmd.Actor(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, o, expected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
