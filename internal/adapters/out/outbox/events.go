// Package outbox maps domain events to outbox messages. Storage adapters call it
// while committing a unit of work; the Kafka publisher ships the result.
package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/ports"
)

// OrderStatusChangedType is the message type of order status events.
const OrderStatusChangedType = "order.status_changed"

// OrderStatusChanged is the JSON body of an order status event. From is empty
// for the placement event.
type OrderStatusChanged struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	VendorID   string    `json:"vendorId"`
	RunnerID   string    `json:"runnerId,omitempty"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	At         time.Time `json:"at"`
}

// EventSource is an aggregate that records order status events.
type EventSource interface {
	DomainEvents() []order.StatusChanged
}

// FromOrderEvents converts events into messages keyed by order id, so a broker
// partitioned by key keeps each order's events in sequence.
func FromOrderEvents(events []order.StatusChanged) ([]ports.OutboxMessage, error) {
	messages := make([]ports.OutboxMessage, 0, len(events))
	for _, e := range events {
		body := OrderStatusChanged{
			OrderID:    e.OrderID.String(),
			CustomerID: e.CustomerID,
			VendorID:   e.VendorID,
			RunnerID:   e.RunnerID,
			To:         e.To.String(),
			At:         e.At,
		}
		if e.From != order.Unknown {
			body.From = e.From.String()
		}

		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s for order %s: %w", OrderStatusChangedType, body.OrderID, err)
		}

		messages = append(messages, ports.OutboxMessage{
			ID:         kernel.NewUUID(),
			Type:       OrderStatusChangedType,
			Key:        body.OrderID,
			Payload:    payload,
			OccurredAt: e.At,
		})
	}
	return messages, nil
}

// Collect drains the events of every source into messages.
func Collect(sources []EventSource) ([]ports.OutboxMessage, error) {
	var all []ports.OutboxMessage
	for _, s := range sources {
		messages, err := FromOrderEvents(s.DomainEvents())
		if err != nil {
			return nil, err
		}
		all = append(all, messages...)
	}
	return all, nil
}
