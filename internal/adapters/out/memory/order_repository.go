package memory

import (
	"context"
	"slices"
	"sort"

	"studel/internal/adapters/out/outbox"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/ports"
	"studel/internal/pkg/errs"
)

var _ ports.OrderRepository = &OrderRepository{}

type tracker interface {
	TrackAggregate(src outbox.EventSource)
}

type OrderRepository struct {
	access  access
	tracker tracker
}

func (r *OrderRepository) track(o *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(o)
	}
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("order")
	}
	snap := aggregate.Snapshot()

	err := r.access.write(func(s *state) error {
		if _, ok := s.orders[snap.ID]; ok {
			return errs.NewStateConflictError("order", snap.ID.String(), "already exists")
		}
		s.orders[snap.ID] = snap
		return nil
	})
	if err != nil {
		return err
	}
	r.track(aggregate)
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	var snap order.Snapshot
	err := r.access.read(func(s *state) error {
		found, ok := s.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		snap = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(snap)
}

func (r *OrderRepository) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	var matched []order.Snapshot
	err := r.access.read(func(s *state) error {
		for _, snap := range s.orders {
			if matches(snap, filter) {
				matched = append(matched, snap)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	result := make([]*order.Order, 0, len(matched))
	for _, snap := range matched {
		o, err := order.RestoreOrder(snap)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, aggregate *order.Order, expected order.Status) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("order")
	}
	snap := aggregate.Snapshot()

	err := r.access.write(func(s *state) error {
		stored, ok := s.orders[snap.ID]
		if !ok {
			return errs.NewObjectNotFoundError("order", snap.ID.String())
		}
		if stored.Status != expected {
			return errs.NewStateConflictError("order", snap.ID.String(),
				"status changed to "+stored.Status.String()+" concurrently")
		}
		s.orders[snap.ID] = snap
		return nil
	})
	if err != nil {
		return err
	}
	r.track(aggregate)
	return nil
}

func matches(snap order.Snapshot, f ports.OrderFilter) bool {
	if f.CustomerID != "" && snap.CustomerID != f.CustomerID {
		return false
	}
	if f.VendorID != "" && snap.VendorID != f.VendorID {
		return false
	}
	if f.RunnerID != "" && (snap.Runner == nil || snap.Runner.ID != f.RunnerID) {
		return false
	}
	if f.Unassigned && snap.Runner != nil {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, snap.Status) {
		return false
	}
	if !f.CreatedFrom.IsZero() && snap.CreatedAt.Before(f.CreatedFrom) {
		return false
	}
	if !f.CreatedTo.IsZero() && !snap.CreatedAt.Before(f.CreatedTo) {
		return false
	}
	return true
}
