package postgres

import (
	"studel/internal/adapters/out/postgres/catalogrepo"
	"studel/internal/adapters/out/postgres/orderrepo"
	"studel/internal/adapters/out/postgres/outboxrepo"
	"studel/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table, parents before children.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&catalogrepo.VendorDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.DeliveryZoneDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.HistoryDTO{},
		&outboxrepo.MessageDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Tables lists the table names in Models order, for TRUNCATE in tests.
const Tables = "users, vendors, products, delivery_zones, orders, order_items, order_status_history, outbox_messages"
