package commands

import (
	"context"

	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/user"
)

// UpdateDeliveryZoneCommandHandler lets admins edit an existing delivery zone.
type UpdateDeliveryZoneCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateDeliveryZoneCommandHandler(uowFactory CatalogUoWFactory) UpdateDeliveryZoneCommandHandler {
	return UpdateDeliveryZoneCommandHandler{uowFactory: uowFactory}
}

// Handle returns the stored zone. Unknown zone ids yield ObjectNotFoundError; zones
// are not created through this command.
func (h UpdateDeliveryZoneCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryZoneCommand,
) (catalog.DeliveryZone, error) {
	if err := cmd.Validate(); err != nil {
		return catalog.DeliveryZone{}, err
	}
	if err := cmd.Admin().Require(user.Admin, "update delivery zone"); err != nil {
		return catalog.DeliveryZone{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return catalog.DeliveryZone{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	zone := cmd.Zone()

	if _, err := catalogRepo.GetZone(ctx, zone.ID); err != nil {
		return catalog.DeliveryZone{}, err
	}

	if err := catalogRepo.UpdateZone(ctx, zone); err != nil {
		return catalog.DeliveryZone{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return catalog.DeliveryZone{}, err
	}

	return zone, nil
}
