package commands

import (
	"context"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/ports"
)

// RelayOutboxCommandHandler publishes stored order events and marks them sent.
//
// The batch is read in one transaction and marked in a second one; the broker
// call runs with no transaction open so order writes are never blocked on it.
// Messages are marked only after the broker accepted them. A crash or a failed
// mark re-sends the batch on the next run, so consumers see each event at
// least once.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	clock      kernel.Clock
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	clock kernel.Clock,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle returns the number of messages published.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	messages, err := h.pending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, messages...); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	if err = h.markPublished(ctx, ids); err != nil {
		return 0, err
	}

	return len(messages), nil
}

func (h RelayOutboxCommandHandler) pending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OutboxRepository().GetUnpublished(ctx, limit)
}

func (h RelayOutboxCommandHandler) markPublished(ctx context.Context, ids []kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OutboxRepository().MarkPublished(ctx, ids, h.clock.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
