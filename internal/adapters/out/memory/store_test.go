package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"studel/internal/adapters/out/memory"
	"studel/internal/adapters/out/outbox"
	"studel/internal/core/application/usecases/commands"
	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
	"studel/internal/core/ports"
	"studel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var (
	placedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	customer = user.Actor{ID: "cust1", Name: "Alice Johnson", Role: user.Customer, IsApproved: true}
	canteen  = user.Actor{ID: "can1", Name: "Canteen Staff", Role: user.Canteen, IsApproved: true, VendorID: "vendor1"}
	runner   = user.Actor{ID: "run1", Name: "Charlie Brown", Role: user.Runner, IsApproved: true}
	runner2  = user.Actor{ID: "run2", Name: "Diana Prince", Role: user.Runner, IsApproved: true}
)

type orderUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (a orderUoWFactory) Create() commands.OrderUoW { return a.f.Create() }

func newOrder(t *testing.T, vendorID string, at time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customer, vendorID, []order.LineItem{
		{ProductID: "item1", Name: "Masala Dosa", UnitPrice: kernel.Rupees(120), Quantity: 2},
	}, order.Zone{ID: "zone1", Name: "Hostel Block A", Fee: kernel.Rupees(20)}, at)
	require.NoError(t, err)
	return o
}

// readyOrder stores an order and walks it to ReadyForPickup.
func readyOrder(t *testing.T, store *memory.Store) *order.Order {
	t.Helper()
	o := newOrder(t, "vendor1", placedAt)
	require.NoError(t, o.AcceptByVendor(canteen, placedAt.Add(time.Minute)))
	require.NoError(t, o.StartPreparing(canteen, placedAt.Add(2*time.Minute)))
	require.NoError(t, o.MarkReady(canteen, placedAt.Add(10*time.Minute)))
	require.NoError(t, store.Orders().Add(context.Background(), o))
	return o
}

type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memory.Store
	factory *memory.UnitOfWorkFactory
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.factory = memory.NewUnitOfWorkFactory(s.store)
}

func (s *StoreTestSuite) TestCommitPublishesOrderAndOutbox() {
	// Given
	o := newOrder(s.T(), "vendor1", placedAt)
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))

	// When
	s.Require().NoError(uow.OrderRepository().Add(s.ctx, o))

	s.Require().NoError(uow.Commit(s.ctx))

	// Then

	got, err := s.store.Orders().Get(s.ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Placed, got.Status())
	s.Equal(kernel.Rupees(260), got.FinalAmount())

	pending, err := s.store.Outbox().GetUnpublished(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(outbox.OrderStatusChangedType, pending[0].Type)
	s.Equal(o.ID().String(), pending[0].Key)
	s.Empty(o.DomainEvents())
}

func (s *StoreTestSuite) TestRollbackDiscardsWrites() {
	// Given
	o := newOrder(s.T(), "vendor1", placedAt)
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.OrderRepository().Add(s.ctx, o))

	// When
	s.Require().NoError(uow.Rollback(s.ctx))

	// Then
	_, err := s.store.Orders().Get(s.ctx, o.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
	pending, err := s.store.Outbox().GetUnpublished(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(pending)
}

func (s *StoreTestSuite) TestRollbackAfterCommitIsRejected() {
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.Commit(s.ctx))

	s.ErrorIs(uow.Rollback(s.ctx), memory.ErrNoActiveTransaction)
}

func (s *StoreTestSuite) TestBeginWithCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.factory.Create().Begin(ctx)

	s.ErrorIs(err, context.Canceled)
}

func (s *StoreTestSuite) TestUpdateStatusRejectsStaleExpectation() {
	// Given
	o := readyOrder(s.T(), s.store)
	repo := s.store.Orders()

	first, err := repo.Get(s.ctx, o.ID())
	s.Require().NoError(err)
	second, err := repo.Get(s.ctx, o.ID())
	s.Require().NoError(err)

	s.Require().NoError(first.AcceptForDelivery(runner, placedAt.Add(11*time.Minute)))
	s.Require().NoError(second.AcceptForDelivery(runner2, placedAt.Add(11*time.Minute)))

	// When
	errFirst := repo.UpdateStatus(s.ctx, first, order.ReadyForPickup)
	errSecond := repo.UpdateStatus(s.ctx, second, order.ReadyForPickup)

	// Then
	s.NoError(errFirst)
	s.ErrorIs(errSecond, errs.ErrStateConflict)

	stored, err := repo.Get(s.ctx, o.ID())
	s.Require().NoError(err)
	s.Equal("run1", stored.RunnerID())
	s.Len(stored.History(), 5)
}

func (s *StoreTestSuite) TestUpdateStatusOfMissingOrder() {
	o := newOrder(s.T(), "vendor1", placedAt)

	err := s.store.Orders().UpdateStatus(s.ctx, o, order.Placed)

	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *StoreTestSuite) TestListFiltersAndOrdersNewestFirst() {
	// Given
	repo := s.store.Orders()
	older := newOrder(s.T(), "vendor1", placedAt)
	newer := newOrder(s.T(), "vendor1", placedAt.Add(time.Hour))
	other := newOrder(s.T(), "vendor2", placedAt.Add(2*time.Hour))
	for _, o := range []*order.Order{older, newer, other} {
		s.Require().NoError(repo.Add(s.ctx, o))
	}

	s.Run("by vendor", func() {
		got, err := repo.List(s.ctx, ports.OrderFilter{VendorID: "vendor1"})
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal(newer.ID(), got[0].ID())
		s.Equal(older.ID(), got[1].ID())
	})

	s.Run("with limit", func() {
		got, err := repo.List(s.ctx, ports.OrderFilter{Limit: 1})
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal(other.ID(), got[0].ID())
	})

	s.Run("by half-open time range", func() {
		got, err := repo.List(s.ctx, ports.OrderFilter{
			CreatedFrom: placedAt,
			CreatedTo:   placedAt.Add(time.Hour),
		})
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal(older.ID(), got[0].ID())
	})

	s.Run("by status and runner", func() {
		got, err := repo.List(s.ctx, ports.OrderFilter{Statuses: []order.Status{order.Delivered}})
		s.Require().NoError(err)
		s.Empty(got)

		got, err = repo.List(s.ctx, ports.OrderFilter{Unassigned: true, CustomerID: "cust1"})
		s.Require().NoError(err)
		s.Len(got, 3)

		got, err = repo.List(s.ctx, ports.OrderFilter{RunnerID: "run1"})
		s.Require().NoError(err)
		s.Empty(got)
	})
}

func (s *StoreTestSuite) TestUserRepository() {
	repo := s.store.Users()
	alice, err := user.NewUser("cust1", "Alice Johnson", "alice@campus.edu", "9876543210", user.Customer, "campus1", "")
	s.Require().NoError(err)
	charlie, err := user.NewUser("run1", "Charlie Brown", "charlie@campus.edu", "9876543212", user.Runner, "campus1", "")
	s.Require().NoError(err)
	s.Require().NoError(repo.Add(s.ctx, alice))
	s.Require().NoError(repo.Add(s.ctx, charlie))

	s.Run("duplicate phone is a conflict", func() {
		dup, err := user.NewUser("cust9", "Someone", "x@campus.edu", "9876543210", user.Customer, "campus1", "")
		s.Require().NoError(err)
		s.ErrorIs(repo.Add(s.ctx, dup), errs.ErrStateConflict)
	})

	s.Run("get by phone", func() {
		got, err := repo.GetByPhone(s.ctx, "9876543212")
		s.Require().NoError(err)
		s.Equal("run1", got.ID())

		_, err = repo.GetByPhone(s.ctx, "0000000000")
		s.ErrorIs(err, errs.ErrObjectNotFound)
	})

	s.Run("approval is persisted", func() {
		s.Require().NoError(charlie.Approve())
		s.Require().NoError(repo.Update(s.ctx, charlie))

		runners, err := repo.ListByRole(s.ctx, user.Runner)
		s.Require().NoError(err)
		s.Require().Len(runners, 1)
		s.True(runners[0].IsApproved())
	})
}

func (s *StoreTestSuite) TestCatalogRepository() {
	repo := s.store.Catalog()
	vendor, err := catalog.NewVendor("vendor1", "Main Canteen", "8:00 AM - 10:00 PM", "")
	s.Require().NoError(err)
	s.Require().NoError(repo.AddVendor(s.ctx, vendor))

	dosa, err := catalog.NewProduct("item1", "Masala Dosa", "", kernel.Rupees(120), "South Indian", true, "vendor1")
	s.Require().NoError(err)
	chai, err := catalog.NewProduct("item4", "Chai", "", kernel.Rupees(20), "Beverages", true, "vendor1")
	s.Require().NoError(err)
	s.Require().NoError(repo.AddProduct(s.ctx, dosa))
	s.Require().NoError(repo.AddProduct(s.ctx, chai))

	s.Run("products ordered by category", func() {
		products, err := repo.ListProducts(s.ctx, "vendor1")
		s.Require().NoError(err)
		s.Require().Len(products, 2)
		s.Equal("item4", products[0].ID())
	})

	s.Run("product of unknown vendor", func() {
		orphan, err := catalog.NewProduct("item9", "Tea", "", kernel.Rupees(10), "Beverages", true, "vendor9")
		s.Require().NoError(err)
		s.ErrorIs(repo.AddProduct(s.ctx, orphan), errs.ErrObjectNotFound)
	})

	s.Run("availability update", func() {
		dosa.SetAvailability(false)
		s.Require().NoError(repo.UpdateProduct(s.ctx, dosa))

		got, err := repo.GetProduct(s.ctx, "item1")
		s.Require().NoError(err)
		s.False(got.IsAvailable())
	})

	s.Run("zone update requires existing zone", func() {
		zone, err := catalog.NewDeliveryZone("zone1", "Hostel Block A", kernel.Rupees(20))
		s.Require().NoError(err)
		s.ErrorIs(repo.UpdateZone(s.ctx, zone), errs.ErrObjectNotFound)

		s.Require().NoError(repo.AddZone(s.ctx, zone))
		zone.DeliveryFee = kernel.Rupees(15)
		s.Require().NoError(repo.UpdateZone(s.ctx, zone))

		got, err := repo.GetZone(s.ctx, "zone1")
		s.Require().NoError(err)
		s.Equal(kernel.Rupees(15), got.DeliveryFee)
	})
}

func (s *StoreTestSuite) TestOutboxMarkPublished() {
	// Given
	o := newOrder(s.T(), "vendor1", placedAt)
	messages, err := outbox.FromOrderEvents(o.DomainEvents())
	s.Require().NoError(err)
	repo := s.store.Outbox()
	s.Require().NoError(repo.Add(s.ctx, messages...))

	// When
	s.Require().NoError(repo.MarkPublished(s.ctx, []kernel.UUID{messages[0].ID}, placedAt))

	// Then
	pending, err := repo.GetUnpublished(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(pending)
	s.Zero(s.store.OutboxLen())
}

func (s *StoreTestSuite) TestDiscardEventsKeepsOutboxEmpty() {
	// Given
	store := memory.NewStore(memory.DiscardEvents())
	o := newOrder(s.T(), "vendor1", placedAt)
	uow := memory.NewUnitOfWorkFactory(store).Create()
	s.Require().NoError(uow.Begin(s.ctx))

	// When
	s.Require().NoError(uow.OrderRepository().Add(s.ctx, o))
	s.Require().NoError(uow.Commit(s.ctx))

	// Then
	_, err := store.Orders().Get(s.ctx, o.ID())
	s.Require().NoError(err)
	pending, err := store.Outbox().GetUnpublished(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(pending)
	s.Zero(store.OutboxLen())
	s.Empty(o.DomainEvents())
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestConcurrentAcceptForDelivery_ExactlyOneRunnerWins(t *testing.T) {
	// Given
	store := memory.NewStore()
	o := readyOrder(t, store)
	handler := commands.NewTransitionOrderCommandHandler(
		orderUoWFactory{f: memory.NewUnitOfWorkFactory(store)},
		kernel.ClockFunc(func() time.Time { return placedAt.Add(15 * time.Minute) }),
	)

	// When
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, r := range []user.Actor{runner, runner2} {
		wg.Add(1)
		go func(i int, r user.Actor) {
			defer wg.Done()
			cmd, err := commands.NewTransitionOrderCommand(o.ID(), order.AcceptForDelivery, r)
			if err != nil {
				results[i] = err
				return
			}
			_, results[i] = handler.Handle(context.Background(), cmd)
		}(i, r)
	}
	wg.Wait()

	// Then
	var wins, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, errs.ErrStateConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)

	stored, err := store.Orders().Get(context.Background(), o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, stored.Status())
	assert.Len(t, stored.History(), 5)
}
