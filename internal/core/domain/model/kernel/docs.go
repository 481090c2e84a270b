// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identifier for orders and outbox messages, wrapping github.com/google/uuid
//   - Money: an amount in minor currency units (paise); arithmetic never touches floats
//   - Clock: the time source every lifecycle operation reads, plus calendar-day helpers
//
// Values are immutable and safe for concurrent use.
package kernel
