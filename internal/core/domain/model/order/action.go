package order

import (
	"fmt"

	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"
)

// Action is a role-gated transition of the order state machine.
type Action int

const (
	UnknownAction Action = iota
	// AcceptByVendor moves Placed -> Accepted (owning canteen).
	AcceptByVendor
	// StartPreparing moves Accepted -> Preparing (owning canteen).
	StartPreparing
	// MarkReady moves Preparing -> ReadyForPickup (owning canteen).
	MarkReady
	// AcceptForDelivery moves ReadyForPickup -> PickedUp and binds the runner (approved runner).
	AcceptForDelivery
	// MarkArriving moves PickedUp -> Arriving (assigned runner).
	MarkArriving
	// MarkDelivered moves Arriving -> Delivered and records payment (assigned runner).
	MarkDelivered
	// CancelByCustomer moves Placed -> Cancelled (ordering customer).
	CancelByCustomer
	// ForceCancel moves any non-terminal status -> Cancelled (admin).
	ForceCancel
)

// rule is one row of the transition table. A nil from list means
// "any non-terminal status".
type rule struct {
	name string
	role user.Role
	from []Status
	to   Status
}

var rules = map[Action]rule{
	AcceptByVendor:    {name: "accept order", role: user.Canteen, from: []Status{Placed}, to: Accepted},
	StartPreparing:    {name: "start preparing", role: user.Canteen, from: []Status{Accepted}, to: Preparing},
	MarkReady:         {name: "mark ready for pickup", role: user.Canteen, from: []Status{Preparing}, to: ReadyForPickup},
	AcceptForDelivery: {name: "accept delivery", role: user.Runner, from: []Status{ReadyForPickup}, to: PickedUp},
	MarkArriving:      {name: "mark arriving", role: user.Runner, from: []Status{PickedUp}, to: Arriving},
	MarkDelivered:     {name: "mark delivered", role: user.Runner, from: []Status{Arriving}, to: Delivered},
	CancelByCustomer:  {name: "cancel order", role: user.Customer, from: []Status{Placed}, to: Cancelled},
	ForceCancel:       {name: "force-cancel order", role: user.Admin, from: nil, to: Cancelled},
}

// Validate rejects actions missing from the transition table.
func (a Action) Validate() error {
	if _, ok := rules[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

func (a Action) String() string {
	if r, ok := rules[a]; ok {
		return r.name
	}
	return "unknown action"
}

// Role returns the only role allowed to perform the action.
func (a Action) Role() user.Role {
	return rules[a].role
}

// Target returns the status the action leads to.
func (a Action) Target() Status {
	return rules[a].to
}

// Allows reports whether the action may start from status s.
func (a Action) Allows(s Status) bool {
	r, ok := rules[a]
	if !ok || s.Validate() != nil || s.IsTerminal() {
		return false
	}
	if r.from == nil {
		return true
	}
	for _, from := range r.from {
		if from == s {
			return true
		}
	}
	return false
}

// Next returns the status reached by applying a to s, or a StateConflictError
// naming the current status when s does not satisfy the action's precondition.
func (s Status) Next(a Action, orderID string) (Status, error) {
	if err := a.Validate(); err != nil {
		return Unknown, err
	}
	if !a.Allows(s) {
		reason := fmt.Sprintf("cannot %s while order is %s", a, s)
		if s.IsTerminal() {
			reason = fmt.Sprintf("order is %s and can no longer change", s)
		}
		return Unknown, errs.NewStateConflictError("order", orderID, reason)
	}
	return a.Target(), nil
}

// Actions lists every transition in table order.
func Actions() []Action {
	return []Action{
		AcceptByVendor, StartPreparing, MarkReady,
		AcceptForDelivery, MarkArriving, MarkDelivered,
		CancelByCustomer, ForceCancel,
	}
}
