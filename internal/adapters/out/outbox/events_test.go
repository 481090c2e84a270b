package outbox_test

import (
	"encoding/json"
	"testing"
	"time"

	"studel/internal/adapters/out/outbox"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOrderEvents(t *testing.T) {
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	customer := user.Actor{ID: "cust1", Name: "Alice", Role: user.Customer, IsApproved: true}
	canteen := user.Actor{ID: "can1", Name: "Staff", Role: user.Canteen, IsApproved: true, VendorID: "vendor1"}
	o, err := order.NewOrder(kernel.NewUUID(), customer, "vendor1",
		[]order.LineItem{{ProductID: "item1", Name: "Masala Dosa", UnitPrice: kernel.Rupees(120), Quantity: 1}},
		order.Zone{ID: "zone1", Name: "Main Hostel", Fee: kernel.Rupees(20)}, at)
	require.NoError(t, err)
	require.NoError(t, o.AcceptByVendor(canteen, at.Add(time.Minute)))

	messages, err := outbox.Collect([]outbox.EventSource{o})

	require.NoError(t, err)
	require.Len(t, messages, 2)
	for _, m := range messages {
		assert.Equal(t, outbox.OrderStatusChangedType, m.Type)
		assert.Equal(t, o.ID().String(), m.Key)
		require.NoError(t, m.ID.Validate())
	}

	var placed, accepted outbox.OrderStatusChanged
	require.NoError(t, json.Unmarshal(messages[0].Payload, &placed))
	require.NoError(t, json.Unmarshal(messages[1].Payload, &accepted))
	assert.Empty(t, placed.From)
	assert.Equal(t, "Placed", placed.To)
	assert.Equal(t, "Placed", accepted.From)
	assert.Equal(t, "Accepted", accepted.To)
	assert.Equal(t, "vendor1", accepted.VendorID)
	assert.Equal(t, at.Add(time.Minute), messages[1].OccurredAt)
}
