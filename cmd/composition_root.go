package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the single order registry and draft ticket of the
// process and builds every handler on top of them.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *services.OrderRegistry
	draft      *services.DraftTicket
	publisher  ports.OrderEventPublisher
	cache      ports.MenuCache
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. cache may be nil when no menu
// cache is configured.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	cache ports.MenuCache,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   services.NewOrderRegistry(),
		draft:      services.NewDraftTicket(),
		publisher:  publisher,
		cache:      cache,
		logger:     logger,
	}
}

// RestoreOrders loads every stored order into the registry. It must run
// before the server accepts requests.
func (c *CompositionRoot) RestoreOrders(ctx context.Context) error {
	stored, err := c.uowFactory.Create().OrderRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if err := c.registry.Restore(stored); err != nil {
		return fmt.Errorf("restore order registry: %w", err)
	}
	c.logger.Info("order registry restored", "orders", c.registry.Len())
	return nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.draft, c.registry, c.publisher, time.Now, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.registry, c.publisher, time.Now, c.logger)
}

func (c *CompositionRoot) CreateAddDraftItemCommandHandler() commands.AddDraftItemCommandHandler {
	return commands.NewAddDraftItemCommandHandler(c.menuUoWFactory(), c.cache, c.draft, c.logger)
}

func (c *CompositionRoot) CreateCancelDraftCommandHandler() commands.CancelDraftCommandHandler {
	return commands.NewCancelDraftCommandHandler(c.draft)
}

func (c *CompositionRoot) CreateMenuItemCommandHandler() commands.MenuItemCommandHandler {
	return commands.NewMenuItemCommandHandler(c.menuUoWFactory(), c.cache, c.logger)
}

func (c *CompositionRoot) CreateBookingCommandHandler() commands.BookingCommandHandler {
	return commands.NewBookingCommandHandler(c.bookingUoWFactory(), time.Now)
}

func (c *CompositionRoot) CreateGetAllMenuItemsQueryHandler() queries.GetAllMenuItemsQueryHandler {
	return queries.NewGetAllMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllBookingsQueryHandler() queries.GetAllBookingsQueryHandler {
	return queries.NewGetAllBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderQueryHandler() queries.OrderQueryHandler {
	return queries.NewOrderQueryHandler(c.registry, c.draft)
}

// CreateServer builds the HTTP server over all use cases.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	menuCommands := c.CreateMenuItemCommandHandler()
	addDraftItem := c.CreateAddDraftItemCommandHandler()
	cancelDraft := c.CreateCancelDraftCommandHandler()
	placeOrder := c.CreatePlaceOrderCommandHandler()
	changeStatus := c.CreateChangeOrderStatusCommandHandler()
	bookingCommands := c.CreateBookingCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		MenuCommands:      &menuCommands,
		MenuQueries:       c.CreateGetAllMenuItemsQueryHandler(),
		AddDraftItem:      &addDraftItem,
		CancelDraft:       &cancelDraft,
		PlaceOrder:        &placeOrder,
		ChangeOrderStatus: &changeStatus,
		OrderQueries:      c.CreateOrderQueryHandler(),
		BookingCommands:   &bookingCommands,
		BookingQueries:    c.CreateGetAllBookingsQueryHandler(),
	})
}

// CreateJobManager registers the background jobs. The menu cache warmup is
// only added when a cache is configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	jm := jobs.NewJobManager().
		Add("kitchen_backlog", jobs.NewKitchenBacklogJob(c.CreateOrderQueryHandler(), c.cfg.BacklogJobSchedule, c.logger))

	if c.cache != nil {
		jm.Add("menu_cache_warmup", jobs.NewMenuCacheWarmupJob(
			c.CreateGetAllMenuItemsQueryHandler(),
			c.cache,
			c.cfg.MenuWarmupSchedule,
			c.logger,
		))
	}
	return jm
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}
