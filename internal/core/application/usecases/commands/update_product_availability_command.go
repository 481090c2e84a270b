package commands

import (
	"errors"
	"strings"

	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"
	"studel/internal/pkg/guard"
)

var ErrUpdateProductAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateProductAvailabilityCommand must be created via NewUpdateProductAvailabilityCommand constructor",
)

// UpdateProductAvailabilityCommand switches a product on or off for new orders.
// Orders already placed keep their item snapshots.
type UpdateProductAvailabilityCommand struct {
	actor       user.Actor
	productID   string
	isAvailable bool

	guard guard.ConstructorGuard
}

func NewUpdateProductAvailabilityCommand(
	actor user.Actor,
	productID string,
	isAvailable bool,
) (UpdateProductAvailabilityCommand, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return UpdateProductAvailabilityCommand{}, errs.NewValueIsRequiredError("productId")
	}

	return UpdateProductAvailabilityCommand{
		actor:       actor,
		productID:   productID,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductAvailabilityCommandIsNotConstructed)
}

func (c UpdateProductAvailabilityCommand) Actor() user.Actor { return c.actor }
func (c UpdateProductAvailabilityCommand) ProductID() string { return c.productID }
func (c UpdateProductAvailabilityCommand) IsAvailable() bool { return c.isAvailable }
