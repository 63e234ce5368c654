package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"basketsplit/cmd"
	httpadapter "basketsplit/internal/adapters/in/http"
	"basketsplit/internal/adapters/out/postgres/catalogrepo"
	"basketsplit/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.Level()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var gormDB *gorm.DB
	if configs.UsesPostgres() {
		gormDB = openDatabase(configs)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	reloadHandler := app.CreateReloadCatalogCommandHandler()
	result, err := reloadHandler.Handle(ctx, commands.NewReloadCatalogCommand())
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	logger.InfoContext(ctx, "Catalog loaded",
		"source", configs.CatalogSource,
		"items", result.Items,
		"fingerprint", result.Fingerprint,
	)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	loadDotEnv()

	config := cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		CatalogSource:          os.Getenv("CATALOG_SOURCE"),
		CatalogPath:            os.Getenv("CATALOG_PATH"),
		CatalogRefreshSchedule: os.Getenv("CATALOG_REFRESH_SCHEDULE"),
		MetricsNamespace:       os.Getenv("METRICS_NAMESPACE"),
		LogLevel:               os.Getenv("LOG_LEVEL"),
	}
	if config.CatalogSource == "" {
		config.CatalogSource = cmd.CatalogSourceFile
	}
	return config
}

// loadDotEnv reads .env when present. Variables already set in the
// environment take precedence.
func loadDotEnv() {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func openDatabase(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = db.AutoMigrate(&catalogrepo.CatalogEntryDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := httpadapter.NewRouter(app.CreateServer(), app.Registry(), logger)
	if err != nil {
		log.Fatalf("Failed to build HTTP router: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.ErrorContext(shutdownCtx, "HTTP server shutdown failed", "error", err)
		}
	}()

	logger.InfoContext(ctx, "HTTP server starting", "port", port)
	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
