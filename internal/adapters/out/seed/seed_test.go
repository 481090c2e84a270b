package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"studel/internal/adapters/out/memory"
	"studel/internal/adapters/out/seed"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	t.Run("loads the demo campus", func(t *testing.T) {
		require.NoError(t, seed.Load(ctx, factory, logger))

		vendors, err := store.Catalog().ListVendors(ctx)
		require.NoError(t, err)
		assert.Len(t, vendors, 5)

		products, err := store.Catalog().ListProducts(ctx, "vendor1")
		require.NoError(t, err)
		assert.Len(t, products, 3)

		zone, err := store.Catalog().GetZone(ctx, "zone2")
		require.NoError(t, err)
		assert.Equal(t, kernel.Rupees(25), zone.DeliveryFee)

		runners, err := store.Users().ListByRole(ctx, user.Runner)
		require.NoError(t, err)
		require.Len(t, runners, 5)
		assert.Equal(t, "Charlie Brown", runners[0].Name())
		assert.True(t, runners[0].IsApproved())

		staff, err := store.Users().Get(ctx, "cant1")
		require.NoError(t, err)
		assert.Equal(t, "vendor1", staff.VendorID())
	})

	t.Run("second load is a no-op", func(t *testing.T) {
		require.NoError(t, seed.Load(ctx, factory, logger))

		vendors, err := store.Catalog().ListVendors(ctx)
		require.NoError(t, err)
		assert.Len(t, vendors, 5)
	})
}
