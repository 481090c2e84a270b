package order

import (
	"fmt"

	"studel/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Exactly one is current at any time.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status set at creation. No operation creates an order in any other status.
	Placed

	// Accepted means the vendor has taken the order.
	Accepted

	// Preparing means the vendor is preparing the order.
	Preparing

	// ReadyForPickup means the order waits for a runner.
	ReadyForPickup

	// PickedUp means a runner has accepted the delivery and holds the order.
	PickedUp

	// Arriving means the runner is at the drop-off zone.
	Arriving

	// Delivered is terminal; payment has been collected by the runner.
	Delivered

	// Cancelled is terminal and sits outside the progress flow.
	Cancelled
)

var statusNames = map[Status]string{
	Placed:         "Placed",
	Accepted:       "Accepted",
	Preparing:      "Preparing",
	ReadyForPickup: "Ready for Pickup",
	PickedUp:       "Picked Up",
	Arriving:       "Arriving",
	Delivered:      "Delivered",
	Cancelled:      "Cancelled",
}

// flow is the ordered happy path used for progress display.
var flow = []Status{Placed, Accepted, Preparing, ReadyForPickup, PickedUp, Arriving, Delivered}

// Flow returns the ordered progress sequence Placed..Delivered. Cancelled is not part of it.
func Flow() []Status {
	out := make([]Status, len(flow))
	copy(out, flow)
	return out
}

// ParseStatus maps a display name such as "Ready for Pickup" back to a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the eight lifecycle states.
//
// Returns:
//   - nil if the status is valid
//   - ValueIsInvalidError for Unknown and out of range values
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display name, or "Unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Progress returns the position of s within Flow. Cancelled and invalid statuses
// have no position and report ok == false; callers show a distinct terminal marker
// instead of a progress step.
//
// Example:
//
//	idx, ok := order.ReadyForPickup.Progress() // 3, true
//	_, ok = order.Cancelled.Progress()         // ok == false
func (s Status) Progress() (int, bool) {
	for i, st := range flow {
		if st == s {
			return i, true
		}
	}
	return -1, false
}

// RequiresRunner reports whether an order in status s must have a bound runner.
func (s Status) RequiresRunner() bool {
	return s == PickedUp || s == Arriving || s == Delivered
}
