package commands_test

import (
	"testing"

	"studel/internal/core/application/usecases/commands"
	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateProductAvailabilityCommandHandler_Handle(t *testing.T) {
	t.Run("owning canteen switches a product off", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewUpdateProductAvailabilityCommand(canteen, "item1", false)
		require.NoError(t, err)
		p := mustProduct(t, "item1", 120, true)

		repo := new(MockCatalogRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CatalogRepository").Return(repo).Once(),
			repo.On("GetProduct", ctx, "item1").Return(p, nil).Once(),
			repo.On("UpdateProduct", ctx, p).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockCatalogUoWFactory)
		factory.On("Create").Return(uow).Once()

		updated, err := commands.NewUpdateProductAvailabilityCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, updated.IsAvailable())
		repo.AssertExpectations(t)
	})

	t.Run("other vendor's staff is denied", func(t *testing.T) {
		ctx := t.Context()
		other := user.Actor{ID: "can2", Name: "Other", Role: user.Canteen, IsApproved: true, VendorID: "vendor2"}
		cmd, _ := commands.NewUpdateProductAvailabilityCommand(other, "item1", false)
		p := mustProduct(t, "item1", 120, true)

		repo := new(MockCatalogRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CatalogRepository").Return(repo).Once()
		repo.On("GetProduct", ctx, "item1").Return(p, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockCatalogUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err := commands.NewUpdateProductAvailabilityCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrAuthorizationDenied)
		assert.True(t, p.IsAvailable())
		repo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
	})

	t.Run("customers are denied before any read", func(t *testing.T) {
		cmd, _ := commands.NewUpdateProductAvailabilityCommand(customer, "item1", false)
		factory := new(MockCatalogUoWFactory)

		_, err := commands.NewUpdateProductAvailabilityCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrAuthorizationDenied)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestUpdateDeliveryZoneCommandHandler_Handle(t *testing.T) {
	t.Run("admin changes the fee", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewUpdateDeliveryZoneCommand(admin, "zone1", "Main Hostel", kernel.Rupees(30))
		require.NoError(t, err)
		old, _ := catalog.NewDeliveryZone("zone1", "Main Hostel", kernel.Rupees(20))

		repo := new(MockCatalogRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CatalogRepository").Return(repo).Once(),
			repo.On("GetZone", ctx, "zone1").Return(old, nil).Once(),
			repo.On("UpdateZone", ctx, cmd.Zone()).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockCatalogUoWFactory)
		factory.On("Create").Return(uow).Once()

		zone, err := commands.NewUpdateDeliveryZoneCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, kernel.Rupees(30), zone.DeliveryFee)
		repo.AssertExpectations(t)
	})

	t.Run("unknown zone", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewUpdateDeliveryZoneCommand(admin, "zone9", "Nowhere", kernel.Rupees(30))

		repo := new(MockCatalogRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CatalogRepository").Return(repo).Once()
		repo.On("GetZone", ctx, "zone9").Return(catalog.DeliveryZone{}, errs.NewObjectNotFoundError("zoneId", "zone9")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockCatalogUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err := commands.NewUpdateDeliveryZoneCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryZoneCommand(admin, "zone1", "", kernel.Rupees(30))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("runners are denied", func(t *testing.T) {
		cmd, _ := commands.NewUpdateDeliveryZoneCommand(runner, "zone1", "Main Hostel", kernel.Rupees(30))
		factory := new(MockCatalogUoWFactory)

		_, err := commands.NewUpdateDeliveryZoneCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrAuthorizationDenied)
	})
}
