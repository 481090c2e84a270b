package queries

import (
	"context"
	"errors"

	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
	"studel/internal/core/ports"
	"studel/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
	ErrGetRunnersQueryIsNotConstructed = errors.New(
		"GetRunnersQuery must be created via NewGetRunnersQuery constructor",
	)
)

// GetAllOrdersQuery lists every order for the admin console, newest first,
// optionally narrowed to some statuses.
type GetAllOrdersQuery struct {
	admin    user.Actor
	statuses []order.Status

	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery(admin user.Actor, statuses ...order.Status) (GetAllOrdersQuery, error) {
	problems := make([]error, 0, len(statuses))
	for _, s := range statuses {
		problems = append(problems, s.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return GetAllOrdersQuery{}, err
	}
	return GetAllOrdersQuery{admin: admin, statuses: statuses, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

type GetAllOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetAllOrdersQueryHandler(orders OrderReader) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, q GetAllOrdersQuery) ([]*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := q.admin.Require(user.Admin, "list all orders"); err != nil {
		return nil, err
	}

	return h.orders.List(ctx, ports.OrderFilter{Statuses: q.statuses})
}

// GetRunnersQuery lists runner accounts with their approval state.
type GetRunnersQuery struct {
	admin user.Actor

	guard guard.ConstructorGuard
}

func NewGetRunnersQuery(admin user.Actor) GetRunnersQuery {
	return GetRunnersQuery{admin: admin, guard: guard.NewConstructorGuard()}
}

func (q GetRunnersQuery) Validate() error {
	return q.guard.Validate(ErrGetRunnersQueryIsNotConstructed)
}

type GetRunnersQueryHandler struct {
	users UserReader
}

func NewGetRunnersQueryHandler(users UserReader) GetRunnersQueryHandler {
	return GetRunnersQueryHandler{users: users}
}

func (h GetRunnersQueryHandler) Handle(ctx context.Context, q GetRunnersQuery) ([]*user.User, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := q.admin.Require(user.Admin, "list runners"); err != nil {
		return nil, err
	}

	return h.users.ListByRole(ctx, user.Runner)
}
