package main

import (
	"fmt"
	"log/slog"
	"os"

	"comanda/cmd"
	httpadapter "comanda/internal/adapters/in/http"
	postgresadapter "comanda/internal/adapters/out/postgres"
	"comanda/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = postgresadapter.Migrate(gormDB); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := jobs.NewJobManager(
		app.CreateGetDailySummaryQueryHandler(),
		app.CreateGetKitchenQueueQueryHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func startWebServer(app cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateRegisterPaymentCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateCreateOrderWithPaymentCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetKitchenQueueQueryHandler(),
		app.CreateGetReadyOrdersQueryHandler(),
		app.CreateGetTicketQueryHandler(),
		app.CreateGetDailySummaryQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
