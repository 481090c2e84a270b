package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"studel/internal/adapters/out/memory"
	"studel/internal/adapters/out/postgres"
	"studel/internal/adapters/out/postgres/catalogrepo"
	"studel/internal/adapters/out/postgres/orderrepo"
	"studel/internal/adapters/out/postgres/userrepo"
	"studel/internal/core/application/usecases/queries"
	"studel/internal/core/ports"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Storage is one persistence adapter: a transactional write side and
// non-transactional readers over the same data.
type Storage struct {
	UoWFactory ports.UnitOfWorkFactory
	Orders     queries.OrderReader
	Users      queries.UserReader
	Catalog    queries.CatalogReader
}

// NewMemoryStorage keeps everything in process memory. State is lost on exit.
// Without recordEvents nothing is written to the outbox.
func NewMemoryStorage(recordEvents bool) Storage {
	var opts []memory.Option
	if !recordEvents {
		opts = append(opts, memory.DiscardEvents())
	}
	store := memory.NewStore(opts...)
	return Storage{
		UoWFactory: memory.NewUnitOfWorkFactory(store),
		Orders:     store.Orders(),
		Users:      store.Users(),
		Catalog:    store.Catalog(),
	}
}

func NewPostgresStorage(db *gorm.DB) Storage {
	return Storage{
		UoWFactory: postgres.NewGormUnitOfWorkFactory(db),
		Orders:     orderrepo.NewGormOrderRepository(db, nil),
		Users:      userrepo.NewGormUserRepository(db),
		Catalog:    catalogrepo.NewGormCatalogRepository(db),
	}
}

// OpenPostgres connects, routes gorm's own log lines into logger and migrates the schema.
func OpenPostgres(configs Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(
			slog.NewLogLogger(logger.With("component", "gorm").Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				IgnoreRecordNotFoundError: true,
				ParameterizedQueries:      true,
				LogLevel:                  gormlogger.Warn,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}
