// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"studel/internal/core/ports"

	"github.com/IBM/sarama"
)

var _ ports.EventPublisher = &Publisher{}

// Publisher sends outbox messages one by one through a synchronous producer,
// keyed so that each order's events land on one partition in order.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewPublisher connects a synchronous producer to brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return NewPublisherWithProducer(producer, topic, logger), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{producer: producer, topic: topic, logger: logger.With("component", "kafka_publisher")}
}

// Publish stops at the first failed send. Messages sent before it stay sent, so
// the relay may deliver them again on its next run.
func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	for _, m := range messages {
		if err := ctx.Err(); err != nil {
			return err
		}

		partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
			Topic:     p.topic,
			Key:       sarama.StringEncoder(m.Key),
			Value:     sarama.ByteEncoder(m.Payload),
			Timestamp: m.OccurredAt,
			Headers: []sarama.RecordHeader{
				{Key: []byte("type"), Value: []byte(m.Type)},
				{Key: []byte("message_id"), Value: []byte(m.ID.String())},
			},
		})
		if err != nil {
			return fmt.Errorf("publish %s %s: %w", m.Type, m.ID, err)
		}

		p.logger.Debug("message published",
			"message_id", m.ID.String(), "type", m.Type, "key", m.Key,
			"partition", partition, "offset", offset)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
