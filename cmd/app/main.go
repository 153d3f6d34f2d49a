package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"eshop/cmd"
	httpadapter "eshop/internal/adapters/in/http"
	"eshop/internal/adapters/out/postgres/orderrepo"
	"eshop/internal/adapters/out/postgres/productrepo"
	"eshop/internal/generated/servers"
	"eshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		ReservationTTL:    goDotEnvVariable("RESERVATION_TTL"),
		LowStockThreshold: goDotEnvVariable("LOW_STOCK_THRESHOLD"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	ttl, err := time.ParseDuration(configs.ReservationTTL)
	if err != nil {
		log.Fatalf("Error parsing RESERVATION_TTL: %v", err)
	}

	threshold, err := strconv.Atoi(configs.LowStockThreshold)
	if err != nil {
		log.Fatalf("Error parsing LOW_STOCK_THRESHOLD: %v", err)
	}

	timeoutJob, err := app.CreateReservationTimeoutJob(ttl)
	if err != nil {
		log.Fatalf("Error creating reservation timeout job: %v", err)
	}

	jobManager := app.CreateJobManager(timeoutJob, app.CreateLowStockReportJob(threshold))
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateAddProductCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetProductsQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
