package commands

import (
	"context"

	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"
)

const updateAvailabilityAction = "update product availability"

// UpdateProductAvailabilityCommandHandler lets canteen staff toggle their own vendor's products.
type UpdateProductAvailabilityCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateProductAvailabilityCommandHandler(uowFactory CatalogUoWFactory) UpdateProductAvailabilityCommandHandler {
	return UpdateProductAvailabilityCommandHandler{uowFactory: uowFactory}
}

// Handle returns the updated product.
//
// Returns:
//   - AuthorizationDeniedError for non-canteen actors or products of another vendor
//   - ObjectNotFoundError for unknown products
func (h UpdateProductAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateProductAvailabilityCommand,
) (*catalog.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	actor := cmd.Actor()
	if err := actor.Require(user.Canteen, updateAvailabilityAction); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()

	product, err := catalogRepo.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if product.VendorID() != actor.VendorID {
		return nil, errs.NewAuthorizationDeniedError(actor.ID, updateAvailabilityAction, "product belongs to another vendor")
	}

	product.SetAvailability(cmd.IsAvailable())

	if err = catalogRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return product, nil
}
