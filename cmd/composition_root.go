package cmd

import (
	"context"
	"log/slog"

	"studel/api"
	httpin "studel/internal/adapters/in/http"
	"studel/internal/core/application/usecases/commands"
	"studel/internal/core/application/usecases/queries"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/ports"
	"studel/internal/jobs"

	"github.com/labstack/echo/v4"
)

const outboxRelayBatchSize = 100

type CompositionRoot struct {
	configs   Config
	storage   Storage
	publisher ports.EventPublisher
	clock     kernel.Clock
	logger    *slog.Logger
}

// NewCompositionRoot wires use cases over storage. publisher may be nil, in
// which case order events stay in the outbox.
func NewCompositionRoot(
	configs Config,
	storage Storage,
	publisher ports.EventPublisher,
	clock kernel.Clock,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:   configs,
		storage:   storage,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.storage.UoWFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.storage.UoWFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	var f commands.SignUpUoWFactory = FuncSignUpUoWFactory(func() commands.SignUpUoW {
		return c.storage.UoWFactory.Create()
	})
	return commands.NewSignUpCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveRunnerCommandHandler() commands.ApproveRunnerCommandHandler {
	return commands.NewApproveRunnerCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductAvailabilityCommandHandler() commands.UpdateProductAvailabilityCommandHandler {
	return commands.NewUpdateProductAvailabilityCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryZoneCommandHandler() commands.UpdateDeliveryZoneCommandHandler {
	return commands.NewUpdateDeliveryZoneCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.EventPublisher) commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.storage.UoWFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, publisher, c.clock)
}

func (c *CompositionRoot) CreateGetActorQueryHandler() queries.GetActorQueryHandler {
	return queries.NewGetActorQueryHandler(c.storage.Users)
}

// CreateHTTPHandlers wires every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		TransitionOrder:    c.CreateTransitionOrderCommandHandler(),
		SignUp:             c.CreateSignUpCommandHandler(),
		ApproveRunner:      c.CreateApproveRunnerCommandHandler(),
		UpdateAvailability: c.CreateUpdateProductAvailabilityCommandHandler(),
		UpdateDeliveryZone: c.CreateUpdateDeliveryZoneCommandHandler(),

		Catalog:         queries.NewCatalogQueryHandler(c.storage.Catalog),
		Profile:         queries.NewGetProfileQueryHandler(c.storage.Users),
		GetOrder:        queries.NewGetOrderQueryHandler(c.storage.Orders),
		CustomerOrders:  queries.NewGetCustomerOrdersQueryHandler(c.storage.Orders),
		AvailableOrders: queries.NewGetAvailableOrdersQueryHandler(c.storage.Orders),
		ActiveDelivery:  queries.NewGetActiveDeliveryQueryHandler(c.storage.Orders),
		RunnerEarnings:  queries.NewGetRunnerEarningsQueryHandler(c.storage.Orders, c.clock),
		VendorQueue:     queries.NewGetVendorQueueQueryHandler(c.storage.Orders),
		VendorSummary:   queries.NewGetVendorSummaryQueryHandler(c.storage.Orders, c.clock),
		AllOrders:       queries.NewGetAllOrdersQueryHandler(c.storage.Orders),
		Runners:         queries.NewGetRunnersQueryHandler(c.storage.Users),
	}
}

// CreateAuthenticator verifies bearer tokens signed with AUTH_JWT_SECRET.
func (c *CompositionRoot) CreateAuthenticator() *httpin.Authenticator {
	return httpin.NewAuthenticator(c.configs.AuthJWTSecret, c.CreateGetActorQueryHandler())
}

// CreateRouter loads the embedded API contract and builds the echo instance.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	contract, err := httpin.LoadContract(ctx, api.OpenAPI)
	if err != nil {
		return nil, err
	}
	server := httpin.NewServer(c.CreateHTTPHandlers(), c.logger)
	return httpin.NewRouter(server, contract, c.CreateAuthenticator(), c.logger), nil
}

// CreateJobManager schedules the daily report, and the outbox relay when a
// publisher is configured.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	scheduled := []jobs.Job{
		jobs.NewDailyReportJob(c.storage.Orders, c.storage.Catalog, c.clock, c.configs.DailyReportSchedule, c.logger),
	}
	if c.publisher != nil {
		relay, err := jobs.NewOutboxRelayJob(
			c.CreateRelayOutboxCommandHandler(c.publisher),
			c.configs.OutboxRelaySchedule,
			outboxRelayBatchSize,
			c.logger,
		)
		if err != nil {
			return nil, err
		}
		scheduled = append(scheduled, relay)
	}
	return jobs.NewJobManager(c.logger, scheduled...), nil
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.storage.UoWFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.storage.UoWFactory.Create()
	})
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncSignUpUoWFactory func() commands.SignUpUoW

func (f FuncSignUpUoWFactory) Create() commands.SignUpUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
