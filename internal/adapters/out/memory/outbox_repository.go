package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/ports"
)

var _ ports.OutboxRepository = &OutboxRepository{}

type OutboxRepository struct {
	access access
}

func (r *OutboxRepository) Add(_ context.Context, messages ...ports.OutboxMessage) error {
	return r.access.write(func(s *state) error {
		s.outbox = append(s.outbox, messages...)
		return nil
	})
}

func (r *OutboxRepository) GetUnpublished(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	var pending []ports.OutboxMessage
	_ = r.access.read(func(s *state) error {
		for _, m := range s.outbox {
			if m.PublishedAt == nil {
				pending = append(pending, m)
			}
		}
		return nil
	})
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].OccurredAt.Before(pending[j].OccurredAt) })
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

// MarkPublished drops the matching entries. The memory outbox keeps only the
// backlog; it builds a new slice since earlier state versions share the
// backing array.
func (r *OutboxRepository) MarkPublished(_ context.Context, ids []kernel.UUID, _ time.Time) error {
	return r.access.write(func(s *state) error {
		next := make([]ports.OutboxMessage, 0, len(s.outbox))
		for _, m := range s.outbox {
			if slices.ContainsFunc(ids, m.ID.IsEqual) {
				continue
			}
			next = append(next, m)
		}
		s.outbox = next
		return nil
	})
}
