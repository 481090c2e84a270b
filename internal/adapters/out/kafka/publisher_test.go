package kafka_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"studel/internal/adapters/out/kafka"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/ports"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func message(key string) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:         kernel.NewUUID(),
		Type:       "order.status_changed",
		Key:        key,
		Payload:    []byte(`{"orderId":"` + key + `","to":"Accepted"}`),
		OccurredAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("sends keyed messages to the topic", func(t *testing.T) {
		// Given
		config := sarama.NewConfig()
		config.Producer.Return.Successes = true
		producer := mocks.NewSyncProducer(t, config)
		first, second := message("order-1"), message("order-2")

		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			if msg.Topic != "order.changed" {
				return errors.New("unexpected topic " + msg.Topic)
			}
			key, err := msg.Key.Encode()
			if err != nil {
				return err
			}
			if string(key) != "order-1" {
				return errors.New("unexpected key " + string(key))
			}
			return nil
		})
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			if string(val) != string(second.Payload) {
				return errors.New("unexpected payload")
			}
			return nil
		})
		publisher := kafka.NewPublisherWithProducer(producer, "order.changed", logger)

		// When
		err := publisher.Publish(context.Background(), first, second)

		// Then
		require.NoError(t, err)
		require.NoError(t, publisher.Close())
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		// Given
		config := sarama.NewConfig()
		config.Producer.Return.Successes = true
		producer := mocks.NewSyncProducer(t, config)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		publisher := kafka.NewPublisherWithProducer(producer, "order.changed", logger)

		// When
		err := publisher.Publish(context.Background(), message("order-1"), message("order-2"))

		// Then
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, publisher.Close())
	})

	t.Run("cancelled context sends nothing", func(t *testing.T) {
		config := sarama.NewConfig()
		config.Producer.Return.Successes = true
		producer := mocks.NewSyncProducer(t, config)
		publisher := kafka.NewPublisherWithProducer(producer, "order.changed", logger)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := publisher.Publish(ctx, message("order-1"))

		assert.ErrorIs(t, err, context.Canceled)
		require.NoError(t, publisher.Close())
	})
}
