package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodorder/internal/adapters/out/authclient"
	"foodorder/internal/adapters/out/catalogclient"
	"foodorder/internal/adapters/out/kafka"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/services"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"
)

// CompositionRoot wires adapters, policies and use cases together. All
// construction happens once at startup; handlers created from it are
// cheap values.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    ports.Catalog
	authorizer ports.Authorizer
	notifier   *kafka.Notifier
	dispatcher *services.NotificationDispatcher
	logger     *slog.Logger

	pricing      commands.PricingPolicy
	cancellation commands.CancellationPolicy
}

// NewCompositionRoot builds the object graph from config. Fails fast on
// unparseable policy values.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	taxRate, err := decimal.NewFromString(configs.TaxRate)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse TAX_RATE: %w", err)
	}

	serviceFeeDecimal, err := decimal.NewFromString(configs.ServiceFee)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse SERVICE_FEE: %w", err)
	}
	serviceFee, err := kernel.NewMoneyFromDecimal(serviceFeeDecimal)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse SERVICE_FEE: %w", err)
	}

	cancelDuringPreparation, err := strconv.ParseBool(configs.CancelDuringPreparation)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse CANCEL_DURING_PREPARATION: %w", err)
	}

	notifier := kafka.NewNotifier(
		configs.KafkaHost,
		configs.KafkaCustomerTopic,
		configs.KafkaAdminTopic,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogclient.NewClient(configs.CatalogServiceURL),
		authorizer: authclient.NewClient(configs.AuthServiceURL),
		notifier:   notifier,
		dispatcher: services.NewNotificationDispatcher(notifier, logger),
		logger:     logger,
		pricing: commands.PricingPolicy{
			TaxRate:    taxRate,
			ServiceFee: serviceFee,
		},
		cancellation: commands.CancellationPolicy{
			CancelDuringPreparation: cancelDuringPreparation,
		},
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		c.catalog,
		c.dispatcher,
		c.pricing,
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.cancellation)
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	return commands.NewUpdatePaymentStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	return commands.NewRateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTipCommandHandler() commands.UpdateTipCommandHandler {
	return commands.NewUpdateTipCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApplyDiscountCommandHandler() commands.ApplyDiscountCommandHandler {
	return commands.NewApplyDiscountCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

// Authorizer returns the credential resolver used by the HTTP layer.
func (c *CompositionRoot) Authorizer() ports.Authorizer {
	return c.authorizer
}

// CreateJobManager builds the background job set over the dispatcher.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.dispatcher, c.logger)
}

// Close releases adapter resources held by the root.
func (c *CompositionRoot) Close() error {
	return c.notifier.Close()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
