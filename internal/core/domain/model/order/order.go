package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"
	"studel/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when placement is attempted with an empty cart.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of the ordering domain. It owns the status field,
// enforces the transition table and appends the status history.
//
// Order follows these invariants:
//   - totalPrice, deliveryFee and finalAmount are computed once at placement
//   - history is never empty, starts with Placed and ends with the current status
//   - the runner is unset until AcceptForDelivery and never changes afterwards
//   - Delivered and Cancelled are terminal
//
// The struct keeps its fields private; state changes only through the transition
// methods so that every change also appends history and raises a StatusChanged event.
type Order struct {
	id           kernel.UUID
	customerID   string
	customerName string
	runner       *Runner
	vendorID     string
	items        []LineItem
	totalPrice   kernel.Money
	deliveryFee  kernel.Money
	finalAmount  kernel.Money
	zone         Zone
	status       Status
	history      []HistoryEntry
	paid         bool
	createdAt    time.Time

	events []StatusChanged
	guard  guard.ConstructorGuard
}

// NewOrder places a new order for a customer.
//
// Parameters:
//   - id: identifier assigned to the order (must be valid UUID)
//   - customer: the acting customer; any other role is denied
//   - vendorID: the vendor every item belongs to
//   - items: product snapshots with quantity >= 1 (at least one)
//   - zone: delivery zone snapshot; its fee becomes the order's deliveryFee
//   - at: placement time, used for createdAt and the first history entry
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customer, "vendor1", []order.LineItem{
//	    {ProductID: "item1", Name: "Masala Dosa", UnitPrice: kernel.Rupees(120), Quantity: 2},
//	    {ProductID: "item2", Name: "Idli Sambar", UnitPrice: kernel.Rupees(80), Quantity: 1},
//	}, order.Zone{ID: "zone2", Name: "Library Commons", Fee: kernel.Rupees(25)}, now)
//	// o.TotalPrice() == ₹320, o.DeliveryFee() == ₹25, o.FinalAmount() == ₹345
func NewOrder(
	id kernel.UUID,
	customer user.Actor,
	vendorID string,
	items []LineItem,
	zone Zone,
	at time.Time,
) (*Order, error) {
	if err := customer.Require(user.Customer, "place order"); err != nil {
		return nil, err
	}

	o := &Order{
		customerID:   customer.ID,
		customerName: customer.Name,
		status:       Placed,
		history:      []HistoryEntry{{Status: Placed, At: at}},
		createdAt:    at,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setVendor(vendorID),
		o.setItems(items),
		o.setZone(zone),
	); err != nil {
		return nil, err
	}

	o.totalPrice = sumItems(o.items)
	o.deliveryFee = o.zone.Fee
	o.finalAmount = o.totalPrice.Add(o.deliveryFee)

	o.raise(Unknown, Placed, at)
	return o, nil
}

// Snapshot is the full persisted state of an order, used by repositories to
// rebuild the aggregate and to map it to storage.
type Snapshot struct {
	ID               kernel.UUID
	CustomerID       string
	CustomerName     string
	Runner           *Runner
	VendorID         string
	Items            []LineItem
	TotalPrice       kernel.Money
	DeliveryFee      kernel.Money
	FinalAmount      kernel.Money
	Zone             Zone
	Status           Status
	History          []HistoryEntry
	PaymentCollected bool
	CreatedAt        time.Time
}

// RestoreOrder rebuilds an order from persisted state and re-checks every invariant,
// so a corrupted record is reported instead of being transitioned further.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		customerID:   strings.TrimSpace(s.CustomerID),
		customerName: s.CustomerName,
		totalPrice:   s.TotalPrice,
		deliveryFee:  s.DeliveryFee,
		finalAmount:  s.FinalAmount,
		status:       s.Status,
		history:      append([]HistoryEntry(nil), s.History...),
		paid:         s.PaymentCollected,
		createdAt:    s.CreatedAt,
		guard:        guard.NewConstructorGuard(),
	}
	if s.Runner != nil {
		r := *s.Runner
		o.runner = &r
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setVendor(s.VendorID),
		o.setItems(s.Items),
		o.setZone(s.Zone),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if o.customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if err := o.checkInvariants(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) checkInvariants() error {
	if o.totalPrice != sumItems(o.items) {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%s does not match line items", o.totalPrice))
	}
	if o.finalAmount != o.totalPrice.Add(o.deliveryFee) {
		return errs.NewValueIsInvalidErrorWithCause("finalAmount",
			fmt.Errorf("%s != %s + %s", o.finalAmount, o.totalPrice, o.deliveryFee))
	}
	if len(o.history) == 0 || o.history[0].Status != Placed {
		return errs.NewValueIsInvalidErrorWithCause("history", errors.New("must start with Placed"))
	}
	if last := o.history[len(o.history)-1].Status; last != o.status {
		return errs.NewValueIsInvalidErrorWithCause("history",
			fmt.Errorf("last entry %s does not match status %s", last, o.status))
	}
	if o.status.RequiresRunner() && o.runner == nil {
		return errs.NewValueIsInvalidErrorWithCause("runner",
			fmt.Errorf("status %s requires a runner", o.status))
	}
	if o.runner != nil && strings.TrimSpace(o.runner.ID) == "" {
		return errs.NewValueIsRequiredError("runnerId")
	}
	if o.paid != (o.status == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("paymentCollected",
			fmt.Errorf("payment flag %t inconsistent with status %s", o.paid, o.status))
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the ordering customer's id.
func (o *Order) CustomerID() string { return o.customerID }

// CustomerName returns the customer's name as it was at placement.
func (o *Order) CustomerName() string { return o.customerName }

// Runner returns the bound runner, or nil before AcceptForDelivery.
func (o *Order) Runner() *Runner {
	if o.runner == nil {
		return nil
	}
	r := *o.runner
	return &r
}

// RunnerID returns the bound runner's id or "".
func (o *Order) RunnerID() string {
	if o.runner == nil {
		return ""
	}
	return o.runner.ID
}

func (o *Order) VendorID() string          { return o.vendorID }
func (o *Order) TotalPrice() kernel.Money  { return o.totalPrice }
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }
func (o *Order) FinalAmount() kernel.Money { return o.finalAmount }
func (o *Order) Zone() Zone                { return o.zone }
func (o *Order) Status() Status            { return o.status }
func (o *Order) PaymentCollected() bool    { return o.paid }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// History returns a copy of the status history, oldest first.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// Snapshot exports the full state for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:               o.id,
		CustomerID:       o.customerID,
		CustomerName:     o.customerName,
		Runner:           o.Runner(),
		VendorID:         o.vendorID,
		Items:            o.Items(),
		TotalPrice:       o.totalPrice,
		DeliveryFee:      o.deliveryFee,
		FinalAmount:      o.finalAmount,
		Zone:             o.zone,
		Status:           o.status,
		History:          o.History(),
		PaymentCollected: o.paid,
		CreatedAt:        o.createdAt,
	}
}

// Perform applies action a on behalf of actor at time at.
//
// The checks run in a fixed order and nothing is mutated unless all pass:
//  1. the actor holds the action's role (and approval for AcceptForDelivery)
//  2. the actor owns the order where ownership applies (vendor, customer, bound runner)
//  3. the current status satisfies the action's precondition
//
// Returns:
//   - nil on success; status, history, runner and payment flag are updated together
//   - AuthorizationDeniedError when 1 or 2 fails
//   - StateConflictError when 3 fails, including every attempt on a terminal order
func (o *Order) Perform(a Action, actor user.Actor, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if err := o.authorize(a, actor); err != nil {
		return err
	}

	next, err := o.status.Next(a, o.id.String())
	if err != nil {
		return err
	}

	if a == AcceptForDelivery {
		if o.runner != nil {
			return errs.NewStateConflictError("order", o.id.String(), "a runner is already assigned")
		}
		o.runner = &Runner{ID: actor.ID, Name: actor.Name}
	}
	if next == Delivered {
		o.paid = true
	}

	from := o.status
	o.status = next
	o.history = append(o.history, HistoryEntry{Status: next, At: at})
	o.raise(from, next, at)
	return nil
}

func (o *Order) authorize(a Action, actor user.Actor) error {
	if err := actor.Require(a.Role(), a.String()); err != nil {
		return err
	}

	switch a {
	case AcceptByVendor, StartPreparing, MarkReady:
		if actor.VendorID == "" || actor.VendorID != o.vendorID {
			return errs.NewAuthorizationDeniedError(actor.ID, a.String(), "order belongs to another vendor")
		}
	case AcceptForDelivery:
		if !actor.IsApproved {
			return errs.NewAuthorizationDeniedError(actor.ID, a.String(), "runner is not approved")
		}
	case MarkArriving, MarkDelivered:
		// An unbound order falls through to the state check and is reported as a conflict.
		if o.runner != nil && o.runner.ID != actor.ID {
			return errs.NewAuthorizationDeniedError(actor.ID, a.String(), "order is assigned to another runner")
		}
	case CancelByCustomer:
		if actor.ID != o.customerID {
			return errs.NewAuthorizationDeniedError(actor.ID, a.String(), "order belongs to another customer")
		}
	case ForceCancel, UnknownAction:
	}
	return nil
}

// AcceptByVendor moves Placed -> Accepted for the owning canteen.
func (o *Order) AcceptByVendor(actor user.Actor, at time.Time) error {
	return o.Perform(AcceptByVendor, actor, at)
}

// StartPreparing moves Accepted -> Preparing for the owning canteen.
func (o *Order) StartPreparing(actor user.Actor, at time.Time) error {
	return o.Perform(StartPreparing, actor, at)
}

// MarkReady moves Preparing -> ReadyForPickup for the owning canteen.
func (o *Order) MarkReady(actor user.Actor, at time.Time) error {
	return o.Perform(MarkReady, actor, at)
}

// AcceptForDelivery binds an approved runner and moves ReadyForPickup -> PickedUp.
func (o *Order) AcceptForDelivery(actor user.Actor, at time.Time) error {
	return o.Perform(AcceptForDelivery, actor, at)
}

// MarkArriving moves PickedUp -> Arriving for the bound runner.
func (o *Order) MarkArriving(actor user.Actor, at time.Time) error {
	return o.Perform(MarkArriving, actor, at)
}

// MarkDelivered moves Arriving -> Delivered for the bound runner and records payment.
func (o *Order) MarkDelivered(actor user.Actor, at time.Time) error {
	return o.Perform(MarkDelivered, actor, at)
}

// Cancel lets the ordering customer cancel while the order is still Placed.
func (o *Order) Cancel(actor user.Actor, at time.Time) error {
	return o.Perform(CancelByCustomer, actor, at)
}

// ForceCancel lets an admin cancel any non-terminal order.
func (o *Order) ForceCancel(actor user.Actor, at time.Time) error {
	return o.Perform(ForceCancel, actor, at)
}

// IsVisibleTo reports whether actor is a party to the order or an admin.
func (o *Order) IsVisibleTo(actor user.Actor) bool {
	switch actor.Role {
	case user.Admin:
		return true
	case user.Customer:
		return actor.ID == o.customerID
	case user.Canteen:
		return actor.VendorID != "" && actor.VendorID == o.vendorID
	case user.Runner:
		return (o.runner == nil && o.status == ReadyForPickup) || o.RunnerID() == actor.ID
	case user.UnknownRole:
	}
	return false
}

// DomainEvents returns the events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	return append([]StatusChanged(nil), o.events...)
}

// ClearDomainEvents drops recorded events once they have been persisted.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(from, to Status, at time.Time) {
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		CustomerID: o.customerID,
		VendorID:   o.vendorID,
		RunnerID:   o.RunnerID(),
		From:       from,
		To:         to,
		At:         at,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setVendor(vendorID string) error {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return errs.NewValueIsRequiredError("vendorId")
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	problems := make([]error, 0, len(items))
	for _, item := range items {
		problems = append(problems, item.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setZone(zone Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	o.zone = zone
	return nil
}

func sumItems(items []LineItem) kernel.Money {
	var total kernel.Money
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
