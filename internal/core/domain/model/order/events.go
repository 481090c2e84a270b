package order

import (
	"time"

	"studel/internal/core/domain/model/kernel"
)

// StatusChanged is raised by placement (From == Unknown) and by every committed
// transition. The unit of work persists it next to the status change so that
// notifications exist exactly for committed transitions.
type StatusChanged struct {
	OrderID    kernel.UUID
	CustomerID string
	VendorID   string
	RunnerID   string
	From       Status
	To         Status
	At         time.Time
}
