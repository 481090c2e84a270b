package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/pkg/errs"
)

// LineItem is a product snapshot taken at placement time.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice kernel.Money
	Quantity  int
}

// Subtotal returns UnitPrice × Quantity.
func (l LineItem) Subtotal() kernel.Money {
	return l.UnitPrice.Times(l.Quantity)
}

// Validate checks product identity and a quantity of at least one.
func (l LineItem) Validate() error {
	var problems []error
	if strings.TrimSpace(l.ProductID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("productId"))
	}
	if strings.TrimSpace(l.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("product name"))
	}
	if l.Quantity < 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", l.Quantity, 1, "unbounded", fmt.Errorf("product %s", l.ProductID)))
	}
	return errors.Join(problems...)
}

// Zone is the delivery zone snapshot copied into the order.
type Zone struct {
	ID   string
	Name string
	Fee  kernel.Money
}

// Validate checks the snapshot identity.
func (z Zone) Validate() error {
	var problems []error
	if strings.TrimSpace(z.ID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("deliveryZone id"))
	}
	if strings.TrimSpace(z.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("deliveryZone name"))
	}
	return errors.Join(problems...)
}

// Runner identifies the runner bound to an order.
type Runner struct {
	ID   string
	Name string
}

// HistoryEntry records one status the order passed through.
type HistoryEntry struct {
	Status Status
	At     time.Time
}
