package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
)

const defaultSessionTTL = 30 * time.Minute

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to wire application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		OrderServiceURL:   goDotEnvVariable("ORDER_SERVICE_URL"),
		CourierServiceURL: goDotEnvVariable("COURIER_SERVICE_URL"),
		DocServiceURL:     goDotEnvVariable("DOC_SERVICE_URL"),
		ManifestOutputDir: goDotEnvVariable("MANIFEST_OUTPUT_DIR"),
		SessionTTL:        defaultSessionTTL,
	}

	if raw := goDotEnvVariable("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid SESSION_TTL %q: %v", raw, err)
		}
		config.SessionTTL = ttl
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

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateLoadOrderCommandHandler(),
		app.CreateChooseSupplierCommandHandler(),
		app.CreateChooseCourierCommandHandler(),
		app.CreatePrefetchCouriersCommandHandler(),
		app.CreateGenerateManifestsCommandHandler(),
		app.CreateGetFulfillmentStatusQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
