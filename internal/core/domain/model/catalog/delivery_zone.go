package catalog

import (
	"errors"
	"strings"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/pkg/errs"
)

// DeliveryZone is a drop-off location with a flat delivery fee.
type DeliveryZone struct {
	ID          string
	Name        string
	DeliveryFee kernel.Money
}

// NewDeliveryZone validates a zone. The fee may be zero.
func NewDeliveryZone(id, name string, fee kernel.Money) (DeliveryZone, error) {
	z := DeliveryZone{ID: strings.TrimSpace(id), Name: strings.TrimSpace(name), DeliveryFee: fee}
	var problems []error
	if z.ID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("zone id"))
	}
	if z.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("zone name"))
	}
	if err := errors.Join(problems...); err != nil {
		return DeliveryZone{}, err
	}
	return z, nil
}
