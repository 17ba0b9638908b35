package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/config"
	"github.com/safetrail/safetrail/internal/pkg/database"
	"github.com/safetrail/safetrail/internal/pkg/health"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/middleware"
	"github.com/safetrail/safetrail/internal/pkg/models"
	nsqpkg "github.com/safetrail/safetrail/internal/pkg/nsq"
	"github.com/safetrail/safetrail/internal/pkg/server"
	alertHTTP "github.com/safetrail/safetrail/services/alerts/handler/http"
	alertNSQ "github.com/safetrail/safetrail/services/alerts/handler/nsq"
	"github.com/safetrail/safetrail/services/alerts/repository"
	"github.com/safetrail/safetrail/services/alerts/usecase"
)

const appName = "alert-recorder"

func main() {
	configs, err := config.InitConfig(config.GetEnv("CONFIG_PATH", ""))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if configs.App.Name == "" || configs.App.Name == "safetrail" {
		configs.App.Name = appName
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	if err := run(configs, zapLogger); err != nil {
		logger.Error("Service exited with error", logger.Err(err))
		_ = zapLogger.Close()
		os.Exit(1)
	}
	_ = zapLogger.Close()
}

func run(configs *models.Config, zapLogger *logger.ZapLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown := server.NewShutdownManager(zapLogger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdown.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Shutdown completed with errors", logger.Err(err))
		}
	}()

	postgres, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	shutdown.Register(func(context.Context) error { return postgres.Close() })

	alertUC := usecase.NewAlertUC(repository.NewAlertRepository(postgres.GetDB()))

	consumer, err := nsqpkg.NewConsumer(configs.NSQ, configs.NSQ.AlertTopic, configs.NSQ.RecorderGroup,
		alertNSQ.NewAlertHandler(alertUC).HandleMessage)
	if err != nil {
		return fmt.Errorf("failed to start NSQ consumer: %w", err)
	}
	// registered last so in-flight messages finish before the database closes
	shutdown.Register(func(context.Context) error {
		consumer.Stop()
		return nil
	})
	logger.Info("Consuming panic alerts",
		logger.String("topic", configs.NSQ.AlertTopic),
		logger.String("channel", configs.NSQ.RecorderGroup))

	accessLogger, err := logger.NewAppLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.AccessLog,
		Service:  configs.App.Name,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize access logger: %w", err)
	}
	shutdown.Register(func(context.Context) error { return accessLogger.Close() })

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgres))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(accessLogger))

	health.RegisterHealthEndpoints(e, configs.App.Name, healthService)
	alertHTTP.NewAlertHandler(alertUC).RegisterRoutes(e.Group("/api"))

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	return server.NewGracefulServer(e, zapLogger, addr, configs.Server.ShutdownTimeout).Run(ctx)
}
