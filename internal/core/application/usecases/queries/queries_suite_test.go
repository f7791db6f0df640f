package queries_test

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// noopTracker satisfies the repository's tracker dependency in tests that
// do not care about aggregate tracking.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// QueryHandlerTestSuite is the shared fixture for query handler
// integration tests: a PostgreSQL container, migrated schema, and seed
// helpers that persist orders through the write-side repository.
type QueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *QueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", dsn)
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *QueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *QueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedOrder persists a valid order, applying mutate to the params first.
func (suite *QueryHandlerTestSuite) seedOrder(mutate func(*order.NewOrderParams)) *order.Order {
	unitPrice, err := kernel.NewMoneyFromFloat(16.99)
	suite.Require().NoError(err)
	item, err := order.NewItem("Margherita Pizza", unitPrice, 1, "margherita.png", "")
	suite.Require().NoError(err)

	address, err := order.NewAddress("12 Main St", "Springfield", "IL", "62704")
	suite.Require().NoError(err)

	contact, err := order.NewContactInfo("Alex", "Doe", "alex@example.com", "+15550100")
	suite.Require().NoError(err)

	deliveryFee, err := kernel.NewMoneyFromFloat(2.99)
	suite.Require().NoError(err)

	userID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	params := order.NewOrderParams{
		ID:              kernel.NewUUID(),
		OrderNumber:     kernel.NewOrderNumber(),
		UserID:          &userID,
		UserEmail:       "alex@example.com",
		RestaurantID:    kernel.NewUUID(),
		RestaurantName:  "Napoli Express",
		RestaurantImage: "napoli.png",
		Items:           []order.Item{item},
		DeliveryType:    order.Delivery,
		DeliveryAddress: &address,
		Contact:         contact,
		PaymentMethod:   order.CreditCard,
		Pricing: order.Pricing{
			DeliveryFee: deliveryFee,
			TaxRate:     decimal.NewFromFloat(0.08),
		},
		EstimatedDelivery: now.Add(45 * time.Minute),
		Now:               now,
	}
	if mutate != nil {
		mutate(&params)
	}

	aggregate, err := order.NewOrder(params)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), aggregate))
	return aggregate
}
