package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"studel/cmd"
	"studel/internal/adapters/out/kafka"
	"studel/internal/adapters/out/seed"
	"studel/internal/core/domain/model/kernel"
	"studel/internal/core/ports"
	"studel/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger := logging.New(configs.LogLevel, os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage := openStorage(configs, logger)
	if configs.SeedDemoData {
		if err := seed.Load(ctx, storage.UoWFactory, logger.With("component", "seed")); err != nil {
			log.Fatalf("Error loading demo data: %v", err)
		}
	}

	var publisher ports.EventPublisher
	if brokers := configs.KafkaBrokers(); len(brokers) > 0 {
		p, err := kafka.NewPublisher(brokers, configs.KafkaOrderChangedTopic, logger)
		if err != nil {
			log.Fatalf("Error connecting to kafka: %v", err)
		}
		defer func() {
			if err := p.Close(); err != nil {
				logger.Error("Error closing kafka producer", "error", err)
			}
		}()
		publisher = p
	}

	location, _ := configs.Location()
	app := cmd.NewCompositionRoot(configs, storage, publisher, kernel.NewSystemClock(location), logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Error loading .env file: %v", err)
	}

	seedDemo, _ := strconv.ParseBool(os.Getenv("SEED_DEMO_DATA"))
	config := cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		Storage:                os.Getenv("STORAGE"),
		AuthJWTSecret:          os.Getenv("AUTH_JWT_SECRET"),
		AppTimezone:            os.Getenv("APP_TIMEZONE"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		OutboxRelaySchedule:    os.Getenv("OUTBOX_RELAY_SCHEDULE"),
		DailyReportSchedule:    os.Getenv("DAILY_REPORT_SCHEDULE"),
		LogLevel:               os.Getenv("LOG_LEVEL"),
		SeedDemoData:           seedDemo,
	}
	return config.WithDefaults()
}

func openStorage(configs cmd.Config, logger *slog.Logger) cmd.Storage {
	if configs.Storage == cmd.StorageMemory {
		logger.Warn("Using in-memory storage, data is lost on exit")
		return cmd.NewMemoryStorage(len(configs.KafkaBrokers()) > 0)
	}

	db, err := cmd.OpenPostgres(configs, logger)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	return cmd.NewPostgresStorage(db)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateRouter(ctx)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting web server: %v", err)
		}
	}()
	logger.Info("Web server started", "port", port)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down web server", "error", err)
	}
}
