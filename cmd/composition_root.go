package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "speedial/internal/adapters/in/http"
	"speedial/internal/adapters/out/gemini"
	"speedial/internal/adapters/out/memory"
	"speedial/internal/core/application/advisor"
	"speedial/internal/core/application/notifications"
	"speedial/internal/core/application/usecases/commands"
	"speedial/internal/core/application/usecases/queries"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/services"
	"speedial/internal/core/ports"
	"speedial/internal/jobs"

	"github.com/jonboulle/clockwork"
)

// CompositionRoot owns the process wide singletons and builds every handler
// on top of them.
type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	clock      clockwork.Clock
	rnd        kernel.RandomSource
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	queue      *notifications.Queue
	advisor    *advisor.Advisor
	simulator  *services.PositionSimulator
}

// NewCompositionRoot seeds the store and connects the text generator. Without
// an API key the advisor serves its fallbacks.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	clk := clockwork.NewRealClock()
	rnd := kernel.NewSeededRandom(cfg.Seed())

	seed, err := memory.DefaultSeed(clk.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}
	store, err := memory.NewStore(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to build store: %w", err)
	}

	queue, err := notifications.NewQueue(clk, cfg.NotificationTTL, logger)
	if err != nil {
		return nil, err
	}

	generator, err := newTextGenerator(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	adv, err := advisor.NewAdvisor(generator, clk, logger)
	if err != nil {
		return nil, err
	}

	simulator, err := services.NewPositionSimulator(rnd)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		clock:      clk,
		rnd:        rnd,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		queue:      queue,
		advisor:    adv,
		simulator:  simulator,
	}, nil
}

func newTextGenerator(ctx context.Context, cfg Config, logger *slog.Logger) (ports.TextGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, advisor answers will use fallbacks")
		return gemini.Disabled{}, nil
	}
	generator, err := gemini.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return generator, nil
}

// Close stops pending notification timers and cancels advisor requests.
func (c *CompositionRoot) Close() {
	c.advisor.Close()
	c.queue.Close()
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoW() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.uow(), c.queue)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.uow(), c.queue)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoW(), c.queue, c.clock)
}

func (c *CompositionRoot) CreatePlaceFoodOrderCommandHandler() commands.PlaceFoodOrderCommandHandler {
	return commands.NewPlaceFoodOrderCommandHandler(c.orderUoW(), c.store, c.queue, c.clock)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoW(), c.queue)
}

func (c *CompositionRoot) CreateToggleAvailabilityCommandHandler() commands.ToggleAvailabilityCommandHandler {
	return commands.NewToggleAvailabilityCommandHandler(c.courierUoW(), c.queue)
}

func (c *CompositionRoot) CreateMoveCouriersCommandHandler() commands.MoveCouriersCommandHandler {
	return commands.NewMoveCouriersCommandHandler(c.uow(), c.simulator)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateQueryHandlers() httpin.QueryHandlers {
	return httpin.QueryHandlers{
		GetOrders:        queries.NewGetOrdersQueryHandler(c.store),
		GetCouriers:      c.CreateGetCouriersQueryHandler(),
		GetFleetStats:    queries.NewGetFleetStatsQueryHandler(c.store),
		GetRiderTask:     queries.NewGetRiderTaskQueryHandler(c.store),
		GetMarketplace:   queries.NewGetMarketplaceQueryHandler(c.store),
		GetCartQuote:     queries.NewGetCartQuoteQueryHandler(c.store),
		GetReorder:       queries.NewGetReorderQueryHandler(c.store, c.store),
		GetOrderETA:      queries.NewGetOrderETAQueryHandler(c.store, c.advisor),
		GetOrderMessage:  queries.NewGetOrderMessageQueryHandler(c.store, c.advisor),
		GetFleetInsights: queries.NewGetFleetInsightsQueryHandler(c.store, c.advisor),
	}
}

func (c *CompositionRoot) CreateCommandHandlers() httpin.CommandHandlers {
	return httpin.CommandHandlers{
		AssignCourier:      c.CreateAssignCourierCommandHandler(),
		UpdateOrderStatus:  c.CreateUpdateOrderStatusCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		PlaceFoodOrder:     c.CreatePlaceFoodOrderCommandHandler(),
		CreateCourier:      c.CreateCreateCourierCommandHandler(),
		ToggleAvailability: c.CreateToggleAvailabilityCommandHandler(),
	}
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCommandHandlers(),
		c.CreateQueryHandlers(),
		c.queue,
		c.advisor,
		c.rnd,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateMoveCouriersCommandHandler(),
		c.advisor,
		c.cfg.TickSchedule,
		c.cfg.TrafficSchedule,
		c.logger,
	)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
