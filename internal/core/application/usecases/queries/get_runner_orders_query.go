package queries

import (
	"context"
	"errors"

	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
	"studel/internal/core/ports"
	"studel/internal/pkg/errs"
	"studel/internal/pkg/guard"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
	ErrGetActiveDeliveryQueryIsNotConstructed = errors.New(
		"GetActiveDeliveryQuery must be created via NewGetActiveDeliveryQuery constructor",
	)
)

// GetAvailableOrdersQuery lists orders waiting for a runner. Only approved runners
// see the marketplace.
type GetAvailableOrdersQuery struct {
	runner user.Actor

	guard guard.ConstructorGuard
}

func NewGetAvailableOrdersQuery(runner user.Actor) GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{runner: runner, guard: guard.NewConstructorGuard()}
}

func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

type GetAvailableOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetAvailableOrdersQueryHandler(orders OrderReader) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{orders: orders}
}

func (h GetAvailableOrdersQueryHandler) Handle(ctx context.Context, q GetAvailableOrdersQuery) ([]*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := q.runner.Require(user.Runner, "list available orders"); err != nil {
		return nil, err
	}
	if !q.runner.IsApproved {
		return nil, errs.NewAuthorizationDeniedError(q.runner.ID, "list available orders", "runner is not approved")
	}

	return h.orders.List(ctx, ports.OrderFilter{
		Statuses:   []order.Status{order.ReadyForPickup},
		Unassigned: true,
	})
}

// GetActiveDeliveryQuery returns the runner's order that is picked up or arriving.
// A runner without one gets ObjectNotFoundError.
type GetActiveDeliveryQuery struct {
	runner user.Actor

	guard guard.ConstructorGuard
}

func NewGetActiveDeliveryQuery(runner user.Actor) GetActiveDeliveryQuery {
	return GetActiveDeliveryQuery{runner: runner, guard: guard.NewConstructorGuard()}
}

func (q GetActiveDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveryQueryIsNotConstructed)
}

type GetActiveDeliveryQueryHandler struct {
	orders OrderReader
}

func NewGetActiveDeliveryQueryHandler(orders OrderReader) GetActiveDeliveryQueryHandler {
	return GetActiveDeliveryQueryHandler{orders: orders}
}

func (h GetActiveDeliveryQueryHandler) Handle(ctx context.Context, q GetActiveDeliveryQuery) (*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := q.runner.Require(user.Runner, "view active delivery"); err != nil {
		return nil, err
	}

	active, err := h.orders.List(ctx, ports.OrderFilter{
		RunnerID: q.runner.ID,
		Statuses: []order.Status{order.PickedUp, order.Arriving},
		Limit:    1,
	})
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, errs.NewObjectNotFoundError("active delivery", q.runner.ID)
	}
	return active[0], nil
}
