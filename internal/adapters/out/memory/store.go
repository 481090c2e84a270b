// Package memory is an in-process storage adapter implementing every repository
// port and the unit of work. It backs STORAGE=memory deployments and the
// engine tests.
//
// A unit of work holds the store's write lock from Begin until Commit or
// Rollback and works on a private copy of the state; Commit publishes the copy.
// Transactions therefore serialize, and a failed transaction leaves nothing behind.
package memory

import (
	"sync"

	"studel/internal/core/domain/model/catalog"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/domain/model/order"
	"studel/internal/core/domain/model/user"
	"studel/internal/core/ports"
)

type userRow struct {
	id, name, email, phone string
	role                   user.Role
	campusID, vendorID     string
	isApproved             bool
}

func userRowOf(u *user.User) userRow {
	return userRow{
		id: u.ID(), name: u.Name(), email: u.Email(), phone: u.Phone(), role: u.Role(),
		campusID: u.CampusID(), vendorID: u.VendorID(), isApproved: u.IsApproved(),
	}
}

func (r userRow) restore() (*user.User, error) {
	return user.RestoreUser(r.id, r.name, r.email, r.phone, r.role, r.campusID, r.vendorID, r.isApproved)
}

type productRow struct {
	id, name, description string
	price                 kernel.Money
	category              string
	isAvailable           bool
	vendorID              string
}

func productRowOf(p *catalog.Product) productRow {
	return productRow{
		id: p.ID(), name: p.Name(), description: p.Description(), price: p.Price(),
		category: p.Category(), isAvailable: p.IsAvailable(), vendorID: p.VendorID(),
	}
}

func (r productRow) restore() (*catalog.Product, error) {
	return catalog.NewProduct(r.id, r.name, r.description, r.price, r.category, r.isAvailable, r.vendorID)
}

// state is one consistent version of all stored data. Order snapshots are
// replaced, never modified in place, so a shallow map copy is a safe clone.
type state struct {
	orders   map[kernel.UUID]order.Snapshot
	users    map[string]userRow
	vendors  map[string]catalog.Vendor
	products map[string]productRow
	zones    map[string]catalog.DeliveryZone
	outbox   []ports.OutboxMessage
}

func newState() *state {
	return &state{
		orders:   map[kernel.UUID]order.Snapshot{},
		users:    map[string]userRow{},
		vendors:  map[string]catalog.Vendor{},
		products: map[string]productRow{},
		zones:    map[string]catalog.DeliveryZone{},
	}
}

func (s *state) clone() *state {
	c := &state{
		orders:   make(map[kernel.UUID]order.Snapshot, len(s.orders)),
		users:    make(map[string]userRow, len(s.users)),
		vendors:  make(map[string]catalog.Vendor, len(s.vendors)),
		products: make(map[string]productRow, len(s.products)),
		zones:    make(map[string]catalog.DeliveryZone, len(s.zones)),
		outbox:   append([]ports.OutboxMessage(nil), s.outbox...),
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.vendors {
		c.vendors[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.zones {
		c.zones[k] = v
	}
	return c
}

// Store is the shared in-memory database.
type Store struct {
	mu            sync.RWMutex
	state         *state
	discardEvents bool
}

// Option configures a Store.
type Option func(*Store)

// DiscardEvents makes Commit drop domain events instead of writing them to the
// outbox. Use it when nothing relays the outbox.
func DiscardEvents() Option {
	return func(s *Store) {
		s.discardEvents = true
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{state: newState()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// access runs repository operations against either the committed state (with
// locking) or a transaction's private copy (already locked by the transaction).
type access interface {
	read(fn func(s *state) error) error
	write(fn func(s *state) error) error
}

type storeAccess struct{ store *Store }

func (a storeAccess) read(fn func(s *state) error) error {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	return fn(a.store.state)
}

func (a storeAccess) write(fn func(s *state) error) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return fn(a.store.state)
}

// Orders returns a non-transactional order repository for queries.
func (s *Store) Orders() ports.OrderRepository {
	return &OrderRepository{access: storeAccess{store: s}}
}

// Users returns a non-transactional user repository for queries.
func (s *Store) Users() ports.UserRepository {
	return &UserRepository{access: storeAccess{store: s}}
}

// Catalog returns a non-transactional catalog repository for queries.
func (s *Store) Catalog() ports.CatalogRepository {
	return &CatalogRepository{access: storeAccess{store: s}}
}

// Outbox returns a non-transactional outbox repository.
func (s *Store) Outbox() ports.OutboxRepository {
	return &OutboxRepository{access: storeAccess{store: s}}
}
