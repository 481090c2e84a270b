package commands

import (
	"errors"

	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/guard"
)

var ErrUpdateDeliveryZoneCommandIsNotConstructed = errors.New(
	"UpdateDeliveryZoneCommand must be created via NewUpdateDeliveryZoneCommand constructor",
)

// UpdateDeliveryZoneCommand renames a zone or changes its flat fee. Orders keep
// the zone snapshot taken at placement.
type UpdateDeliveryZoneCommand struct {
	admin user.Actor
	zone  catalog.DeliveryZone

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryZoneCommand(admin user.Actor, zoneID, name string, fee kernel.Money) (UpdateDeliveryZoneCommand, error) {
	zone, err := catalog.NewDeliveryZone(zoneID, name, fee)
	if err != nil {
		return UpdateDeliveryZoneCommand{}, err
	}

	return UpdateDeliveryZoneCommand{
		admin: admin,
		zone:  zone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryZoneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryZoneCommandIsNotConstructed)
}

func (c UpdateDeliveryZoneCommand) Admin() user.Actor          { return c.admin }
func (c UpdateDeliveryZoneCommand) Zone() catalog.DeliveryZone { return c.zone }
