package order_test

import (
	"testing"

	"studel/internal/core/domain/model/order"
	"studel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Placed, "Placed"},
		{order.Accepted, "Accepted"},
		{order.Preparing, "Preparing"},
		{order.ReadyForPickup, "Ready for Pickup"},
		{order.PickedUp, "Picked Up"},
		{order.Arriving, "Arriving"},
		{order.Delivered, "Delivered"},
		{order.Cancelled, "Cancelled"},
		{order.Unknown, "Unknown"},
		{order.Status(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should round-trip every display name", func(t *testing.T) {
		for _, s := range append(order.Flow(), order.Cancelled) {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("Lost")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Placed.Validate())
	require.NoError(t, order.Cancelled.Validate())
	assert.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, s := range order.Flow() {
		assert.Equal(t, s == order.Delivered, s.IsTerminal(), s.String())
	}
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_Progress(t *testing.T) {
	t.Run("should index the happy path in order", func(t *testing.T) {
		for i, s := range order.Flow() {
			idx, ok := s.Progress()

			assert.True(t, ok)
			assert.Equal(t, i, idx)
		}
	})

	t.Run("should have no position for cancelled", func(t *testing.T) {
		_, ok := order.Cancelled.Progress()

		assert.False(t, ok)
	})

	t.Run("flow should contain seven statuses and exclude cancelled", func(t *testing.T) {
		flow := order.Flow()

		assert.Len(t, flow, 7)
		assert.NotContains(t, flow, order.Cancelled)
	})

	t.Run("flow should be a copy", func(t *testing.T) {
		flow := order.Flow()
		flow[0] = order.Cancelled

		assert.Equal(t, order.Placed, order.Flow()[0])
	})
}
