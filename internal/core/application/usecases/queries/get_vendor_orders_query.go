package queries

import (
	"context"
	"errors"
	"time"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
	"studel/internal/core/domain/services"
	"studel/internal/core/ports"
	"studel/internal/pkg/guard"
)

var (
	ErrGetVendorQueueQueryIsNotConstructed = errors.New(
		"GetVendorQueueQuery must be created via NewGetVendorQueueQuery constructor",
	)
	ErrGetVendorSummaryQueryIsNotConstructed = errors.New(
		"GetVendorSummaryQuery must be created via NewGetVendorSummaryQuery constructor",
	)
)

// vendorQueueStatuses are the statuses a canteen still has to act on or hand over.
var vendorQueueStatuses = []order.Status{order.Placed, order.Accepted, order.Preparing, order.ReadyForPickup}

// GetVendorQueueQuery lists the acting canteen's open orders, newest first.
type GetVendorQueueQuery struct {
	staff user.Actor

	guard guard.ConstructorGuard
}

func NewGetVendorQueueQuery(staff user.Actor) GetVendorQueueQuery {
	return GetVendorQueueQuery{staff: staff, guard: guard.NewConstructorGuard()}
}

func (q GetVendorQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorQueueQueryIsNotConstructed)
}

type GetVendorQueueQueryHandler struct {
	orders OrderReader
}

func NewGetVendorQueueQueryHandler(orders OrderReader) GetVendorQueueQueryHandler {
	return GetVendorQueueQueryHandler{orders: orders}
}

func (h GetVendorQueueQueryHandler) Handle(ctx context.Context, q GetVendorQueueQuery) ([]*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := q.staff.Require(user.Canteen, "view vendor queue"); err != nil {
		return nil, err
	}

	return h.orders.List(ctx, ports.OrderFilter{VendorID: q.staff.VendorID, Statuses: vendorQueueStatuses})
}

// GetVendorSummaryQuery computes the acting canteen's order count and revenue for today.
type GetVendorSummaryQuery struct {
	staff user.Actor

	guard guard.ConstructorGuard
}

func NewGetVendorSummaryQuery(staff user.Actor) GetVendorSummaryQuery {
	return GetVendorSummaryQuery{staff: staff, guard: guard.NewConstructorGuard()}
}

func (q GetVendorSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorSummaryQueryIsNotConstructed)
}

// GetVendorSummaryQueryResponse holds today's totals. Revenue excludes delivery fees
// and cancelled orders.
type GetVendorSummaryQueryResponse struct {
	VendorID string
	Orders   int
	Revenue  kernel.Money
	ByStatus map[order.Status]int
}

type GetVendorSummaryQueryHandler struct {
	orders     OrderReader
	clock      kernel.Clock
	summarizer services.DailySummarizer
}

func NewGetVendorSummaryQueryHandler(orders OrderReader, clock kernel.Clock) GetVendorSummaryQueryHandler {
	return GetVendorSummaryQueryHandler{orders: orders, clock: clock, summarizer: services.NewDailySummarizer()}
}

func (h GetVendorSummaryQueryHandler) Handle(
	ctx context.Context,
	q GetVendorSummaryQuery,
) (GetVendorSummaryQueryResponse, error) {
	if err := q.Validate(); err != nil {
		return GetVendorSummaryQueryResponse{}, err
	}
	if err := q.staff.Require(user.Canteen, "view vendor summary"); err != nil {
		return GetVendorSummaryQueryResponse{}, err
	}

	day, err := VendorDay(ctx, h.orders, h.summarizer, q.staff.VendorID, h.clock.Now())
	if err != nil {
		return GetVendorSummaryQueryResponse{}, err
	}

	return GetVendorSummaryQueryResponse{
		VendorID: day.VendorID,
		Orders:   day.Orders,
		Revenue:  day.Revenue,
		ByStatus: day.ByStatus,
	}, nil
}

// VendorDay loads vendorID's orders created on now's calendar day and summarizes them.
func VendorDay(
	ctx context.Context,
	orders OrderReader,
	summarizer services.DailySummarizer,
	vendorID string,
	now time.Time,
) (services.VendorDay, error) {
	from, to := kernel.DayBounds(now)
	today, err := orders.List(ctx, ports.OrderFilter{VendorID: vendorID, CreatedFrom: from, CreatedTo: to})
	if err != nil {
		return services.VendorDay{}, err
	}
	return summarizer.VendorDay(vendorID, today, now), nil
}
