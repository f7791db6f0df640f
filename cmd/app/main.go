package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodorder/cmd"
	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/orderrepo"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaCustomerTopic:      goDotEnvVariable("KAFKA_CUSTOMER_TOPIC"),
		KafkaAdminTopic:         goDotEnvVariable("KAFKA_ADMIN_TOPIC"),
		CatalogServiceURL:       goDotEnvVariable("CATALOG_SERVICE_URL"),
		AuthServiceURL:          goDotEnvVariable("AUTH_SERVICE_URL"),
		TaxRate:                 goDotEnvVariable("TAX_RATE"),
		ServiceFee:              goDotEnvVariable("SERVICE_FEE"),
		CancelDuringPreparation: goDotEnvVariable("CANCEL_DURING_PREPARATION"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// openDatabase connects through lib/pq rather than gorm's default pgx so
// that unique constraint violations surface as *pq.Error, which the
// repository relies on to detect order number collisions.
func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}))
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateUpdatePaymentStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRateOrderCommandHandler(),
		app.CreateUpdateTipCommandHandler(),
		app.CreateApplyDiscountCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateTrackOrderQueryHandler(),
	)
	server.RegisterRoutes(e, app.Authorizer())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
