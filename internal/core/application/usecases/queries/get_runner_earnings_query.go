package queries

import (
	"context"
	"errors"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
	"studel/internal/core/domain/services"
	"studel/internal/core/ports"
	"studel/internal/pkg/guard"
)

var ErrGetRunnerEarningsQueryIsNotConstructed = errors.New(
	"GetRunnerEarningsQuery must be created via NewGetRunnerEarningsQuery constructor",
)

// GetRunnerEarningsQuery computes today's delivery fee total for the acting runner.
type GetRunnerEarningsQuery struct {
	runner user.Actor

	guard guard.ConstructorGuard
}

func NewGetRunnerEarningsQuery(runner user.Actor) GetRunnerEarningsQuery {
	return GetRunnerEarningsQuery{runner: runner, guard: guard.NewConstructorGuard()}
}

func (q GetRunnerEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetRunnerEarningsQueryIsNotConstructed)
}

// GetRunnerEarningsQueryResponse carries today's delivered orders and their fee total.
type GetRunnerEarningsQueryResponse struct {
	Deliveries int
	Earnings   kernel.Money
	Orders     []*order.Order
}

type GetRunnerEarningsQueryHandler struct {
	orders     OrderReader
	clock      kernel.Clock
	summarizer services.DailySummarizer
}

func NewGetRunnerEarningsQueryHandler(orders OrderReader, clock kernel.Clock) GetRunnerEarningsQueryHandler {
	return GetRunnerEarningsQueryHandler{orders: orders, clock: clock, summarizer: services.NewDailySummarizer()}
}

func (h GetRunnerEarningsQueryHandler) Handle(
	ctx context.Context,
	q GetRunnerEarningsQuery,
) (GetRunnerEarningsQueryResponse, error) {
	if err := q.Validate(); err != nil {
		return GetRunnerEarningsQueryResponse{}, err
	}
	if err := q.runner.Require(user.Runner, "view earnings"); err != nil {
		return GetRunnerEarningsQueryResponse{}, err
	}

	now := h.clock.Now()
	from, to := kernel.DayBounds(now)
	delivered, err := h.orders.List(ctx, ports.OrderFilter{
		RunnerID:    q.runner.ID,
		Statuses:    []order.Status{order.Delivered},
		CreatedFrom: from,
		CreatedTo:   to,
	})
	if err != nil {
		return GetRunnerEarningsQueryResponse{}, err
	}

	day := h.summarizer.RunnerDay(q.runner.ID, delivered, now)
	counted := make(map[kernel.UUID]bool, len(day.OrderIDs))
	for _, id := range day.OrderIDs {
		counted[id] = true
	}
	resp := GetRunnerEarningsQueryResponse{
		Deliveries: day.Deliveries,
		Earnings:   day.Earnings,
		Orders:     make([]*order.Order, 0, day.Deliveries),
	}
	for _, o := range delivered {
		if counted[o.ID()] {
			resp.Orders = append(resp.Orders, o)
		}
	}
	return resp, nil
}
