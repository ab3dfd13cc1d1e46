package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"orders/api"
	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *httpadapter.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    httpadapter.NewMetrics(),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindInconsistentOrdersQueryHandler() queries.FindInconsistentOrdersQueryHandler {
	return queries.NewFindInconsistentOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateFindInconsistentOrdersQueryHandler(),
		c.config.AuditSchedule,
		c.metrics.Registry(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*echo.Echo, error) {
	tokens, err := httpadapter.NewTokenIssuer(c.config.JWTSecret, c.config.TokenTTL)
	if err != nil {
		return nil, err
	}

	doc, err := httpadapter.LoadOpenAPI(ctx, api.OpenAPI)
	if err != nil {
		return nil, err
	}

	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB from gorm: %w", err)
	}

	createHandler := c.CreateCreateOrderCommandHandler()
	updateHandler := c.CreateUpdateOrderCommandHandler()
	deleteHandler := c.CreateDeleteOrderCommandHandler()

	server := httpadapter.NewServer(
		c.config.APIKey,
		tokens,
		&createHandler,
		&updateHandler,
		&deleteHandler,
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
	)

	return httpadapter.NewRouter(httpadapter.RouterConfig{
		Server:  server,
		Tokens:  tokens,
		OpenAPI: doc,
		Metrics: c.metrics,
		DB:      sqlDB,
		Logger:  c.logger,
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
