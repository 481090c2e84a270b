// Package order provides the Order aggregate and the status state machine that
// governs its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding parties, line items, fixed financials,
//     the delivery zone snapshot, the current status and the append-only history
//   - Status: the lifecycle states and the flow used for progress display
//   - Action: the role-gated transitions and the table that drives them
//
// State transitions:
//
//	Placed ─> Accepted ─> Preparing ─> ReadyForPickup ─> PickedUp ─> Arriving ─> Delivered
//	  │          │            │               │              │           │
//	  └──────────┴────────────┴───────────────┴──────────────┴───────────┴──> Cancelled
//
// Placed -> Cancelled is open to the ordering customer; every other edge into
// Cancelled is an admin force-cancel. Delivered and Cancelled are terminal.
//
// Key business rules:
//   - finalAmount == totalPrice + deliveryFee, fixed at placement
//   - history[0] is Placed and history[last] always equals the current status
//   - the runner is bound once, by the first accept-for-delivery, and never replaced
//   - paymentCollected becomes true exactly on Delivered
//   - authorization is checked before the state, and a failed transition leaves the order untouched
package order
