package ports

import (
	"context"
	"time"

	"studel/internal/core/domain/model/kernel"
)

// OutboxMessage is an integration event stored in the same transaction as the
// state change that produced it and published later by the relay.
type OutboxMessage struct {
	ID          kernel.UUID
	Type        string
	Key         string
	Payload     []byte
	OccurredAt  time.Time
	PublishedAt *time.Time
}

// OutboxRepository stores and drains outbox messages.
type OutboxRepository interface {
	Add(ctx context.Context, messages ...OutboxMessage) error

	// GetUnpublished returns up to limit messages in OccurredAt order.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
	Close() error
}
