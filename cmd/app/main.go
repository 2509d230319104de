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

	"inatpos/cmd"
	"inatpos/internal/adapters/out/postgres/menurepo"
	"inatpos/internal/adapters/out/postgres/orderrepo"
	"inatpos/internal/adapters/out/postgres/sequence"
	"inatpos/internal/adapters/out/postgres/staffrepo"
	"inatpos/internal/adapters/out/rabbitmq"
	"inatpos/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := loadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the staff repository relies on.
	gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := migrate(gormDB); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	publisher, err := rabbitmq.NewRabbitNotificationPublisher(config.RabbitMQURL, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("failed to close rabbitmq publisher", "error", err)
		}
	}()

	root := cmd.NewCompositionRoot(config, gormDB, publisher)

	jobManager := jobs.NewJobManager(
		root.CreateResetDashboardCommandHandler(),
		config.DashboardResetSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func loadConfig() (cmd.Config, error) {
	// A missing .env file is fine in containerized deployments where the
	// environment is set directly.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:               envOrDefault("HTTP_PORT", "8080"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 envOrDefault("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOrDefault("DB_SSLMODE", "disable"),
		RabbitMQURL:            os.Getenv("RABBITMQ_URL"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		DashboardResetSchedule: envOrDefault("DASHBOARD_RESET_SCHEDULE", "0 3 * * *"),
	}

	ttl, err := strconv.Atoi(envOrDefault("JWT_TTL_HOURS", "12"))
	if err != nil {
		return cmd.Config{}, fmt.Errorf("JWT_TTL_HOURS must be an integer: %w", err)
	}
	config.JWTTTLHours = ttl

	for name, value := range map[string]string{
		"DB_HOST":      config.DBHost,
		"DB_USER":      config.DBUser,
		"DB_NAME":      config.DBName,
		"RABBITMQ_URL": config.RabbitMQURL,
		"JWT_SECRET":   config.JWTSecret,
	} {
		if value == "" {
			return cmd.Config{}, fmt.Errorf("%s is required", name)
		}
	}

	return config, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&staffrepo.StaffDTO{},
		&menurepo.CategoryDTO{},
		&menurepo.ItemDTO{},
		&menurepo.AddOnDTO{},
		&sequence.CounterDTO{},
	)
}
