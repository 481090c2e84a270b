package commands

import (
	"errors"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand asks to apply one action of the order state machine on
// behalf of an actor. Every status change after placement goes through it.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.AcceptForDelivery, runner)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd) // StateConflict if another runner was faster
type TransitionOrderCommand struct {
	orderID kernel.UUID
	action  order.Action
	actor   user.Actor

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand validates the order id and the action.
func NewTransitionOrderCommand(orderID kernel.UUID, action order.Action, actor user.Actor) (TransitionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), action.Validate()); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		action:  action,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c TransitionOrderCommand) Action() order.Action { return c.action }
func (c TransitionOrderCommand) Actor() user.Actor    { return c.actor }
