package catalog

import (
	"errors"
	"strings"

	"studel/internal/pkg/errs"
)

// Vendor is a canteen or shop taking orders.
type Vendor struct {
	ID             string
	Name           string
	OperatingHours string
	Image          string
}

// NewVendor trims and validates a vendor record.
func NewVendor(id, name, operatingHours, image string) (Vendor, error) {
	v := Vendor{
		ID:             strings.TrimSpace(id),
		Name:           strings.TrimSpace(name),
		OperatingHours: strings.TrimSpace(operatingHours),
		Image:          strings.TrimSpace(image),
	}
	var problems []error
	if v.ID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("vendor id"))
	}
	if v.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("vendor name"))
	}
	if err := errors.Join(problems...); err != nil {
		return Vendor{}, err
	}
	return v, nil
}
