package queries

import (
	"context"
	"errors"

	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
	"studel/internal/core/ports"
	"studel/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists the acting customer's own orders, newest first.
type GetCustomerOrdersQuery struct {
	customer user.Actor

	guard guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(customer user.Actor) GetCustomerOrdersQuery {
	return GetCustomerOrdersQuery{customer: customer, guard: guard.NewConstructorGuard()}
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

type GetCustomerOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetCustomerOrdersQueryHandler(orders OrderReader) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{orders: orders}
}

func (h GetCustomerOrdersQueryHandler) Handle(ctx context.Context, q GetCustomerOrdersQuery) ([]*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := q.customer.Require(user.Customer, "list own orders"); err != nil {
		return nil, err
	}

	return h.orders.List(ctx, ports.OrderFilter{CustomerID: q.customer.ID})
}
