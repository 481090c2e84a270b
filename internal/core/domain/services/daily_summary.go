package services

import (
	"time"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
)

// VendorDay is a vendor's running total for one local calendar day.
type VendorDay struct {
	VendorID   string
	Orders     int
	Revenue    kernel.Money
	ByStatus   map[order.Status]int
	DayStarted time.Time
}

// RunnerDay is a runner's earnings for one local calendar day.
type RunnerDay struct {
	RunnerID   string
	Deliveries int
	Earnings   kernel.Money
	OrderIDs   []kernel.UUID
	DayStarted time.Time
}

// DailySummarizer computes per-day summaries from orders. "Today" is the local
// calendar day of now, as defined by kernel.DayBounds.
//
// Business rules:
//   - A vendor's revenue is the sum of totalPrice over its non-cancelled orders
//     created today (the delivery fee belongs to the runner)
//   - A runner's earnings are the sum of deliveryFee over orders delivered by that
//     runner and created today
type DailySummarizer struct{}

// NewDailySummarizer creates a new DailySummarizer instance.
func NewDailySummarizer() DailySummarizer {
	return DailySummarizer{}
}

// VendorDay summarizes vendorID's orders for the day containing now.
// Orders of other vendors or other days are ignored.
func (DailySummarizer) VendorDay(vendorID string, orders []*order.Order, now time.Time) VendorDay {
	start, _ := kernel.DayBounds(now)
	day := VendorDay{VendorID: vendorID, ByStatus: map[order.Status]int{}, DayStarted: start}

	for _, o := range orders {
		if o.VendorID() != vendorID || !kernel.WithinDay(o.CreatedAt(), now) {
			continue
		}
		day.ByStatus[o.Status()]++
		if o.Status() == order.Cancelled {
			continue
		}
		day.Orders++
		day.Revenue = day.Revenue.Add(o.TotalPrice())
	}
	return day
}

// RunnerDay summarizes runnerID's completed deliveries for the day containing now.
func (DailySummarizer) RunnerDay(runnerID string, orders []*order.Order, now time.Time) RunnerDay {
	start, _ := kernel.DayBounds(now)
	day := RunnerDay{RunnerID: runnerID, OrderIDs: []kernel.UUID{}, DayStarted: start}

	for _, o := range orders {
		if o.RunnerID() != runnerID || o.Status() != order.Delivered || !kernel.WithinDay(o.CreatedAt(), now) {
			continue
		}
		day.Deliveries++
		day.Earnings = day.Earnings.Add(o.DeliveryFee())
		day.OrderIDs = append(day.OrderIDs, o.ID())
	}
	return day
}
