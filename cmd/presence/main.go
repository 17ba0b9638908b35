package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/config"
	"github.com/safetrail/safetrail/internal/pkg/database"
	"github.com/safetrail/safetrail/internal/pkg/health"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/middleware"
	"github.com/safetrail/safetrail/internal/pkg/models"
	nsqpkg "github.com/safetrail/safetrail/internal/pkg/nsq"
	"github.com/safetrail/safetrail/internal/pkg/server"
	"github.com/safetrail/safetrail/internal/pkg/websocket"
	"github.com/safetrail/safetrail/services/presence"
	presenceGateway "github.com/safetrail/safetrail/services/presence/gateway"
	presenceHandler "github.com/safetrail/safetrail/services/presence/handler"
	presenceHTTP "github.com/safetrail/safetrail/services/presence/handler/http"
	presenceWS "github.com/safetrail/safetrail/services/presence/handler/websocket"
	presenceRepository "github.com/safetrail/safetrail/services/presence/repository"
	presenceUsecase "github.com/safetrail/safetrail/services/presence/usecase"
	riskHTTP "github.com/safetrail/safetrail/services/risk/handler/http"
	riskRepository "github.com/safetrail/safetrail/services/risk/repository"
	riskUsecase "github.com/safetrail/safetrail/services/risk/usecase"
)

const appName = "presence-service"

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

	var (
		mirror  presence.PresenceRepo
		history presence.HistoryRepo
		alerts  presence.AlertGW
		redis   *database.RedisClient
	)

	if configs.Redis.Enabled {
		redis, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		shutdown.Register(func(context.Context) error { return redis.Close() })
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redis))
		mirror = presenceRepository.NewPresenceRepository(redis, configs.Redis.TTL)
		logger.Info("Redis presence mirror enabled", logger.String("host", configs.Redis.Host))
	}

	if configs.Database.Enabled {
		postgres, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		shutdown.Register(func(context.Context) error { return postgres.Close() })
		healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgres))
		history = presenceRepository.NewHistoryRepository(postgres.GetDB())
		logger.Info("Location history enabled", logger.String("host", configs.Database.Host))
	}

	if configs.NSQ.Enabled {
		producer, err := nsqpkg.NewProducer(configs.NSQ)
		if err != nil {
			return fmt.Errorf("failed to connect to NSQ: %w", err)
		}
		shutdown.Register(func(context.Context) error {
			producer.Stop()
			return nil
		})
		healthService.AddChecker("nsq", health.NewPingerHealthChecker(producer))
		alerts = presenceGateway.NewAlertGW(producer, configs.NSQ.AlertTopic)
		logger.Info("Panic alert publishing enabled", logger.String("topic", configs.NSQ.AlertTopic))
	}

	presenceUC := presenceUsecase.NewPresenceUC(configs.Presence, mirror, history, alerts)
	loopCtx, stopLoop := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = presenceUC.Run(loopCtx)
	}()
	// registered last so it runs first: the loop flushes its sink before stores close
	shutdown.Register(func(ctx context.Context) error {
		stopLoop()
		select {
		case <-loopDone:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	riskUC := riskUsecase.NewRiskUC(configs.Risk, riskRepository.NewZoneCache())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = configs.Server.ReadTimeout
	e.Server.WriteTimeout = configs.Server.WriteTimeout

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(accessLogger))

	health.RegisterHealthEndpoints(e, configs.App.Name, healthService)

	api := e.Group("/api")
	if redis != nil && configs.Server.RateLimit > 0 {
		api.Use(middleware.IPRateLimiter(configs.Server.RateLimit, configs.Server.RateLimitPeriod, redis.GetClient()))
	}

	wsManager := websocket.NewManager(configs.JWT, configs.WebSocket)
	handler := presenceHandler.NewHandler(
		presenceHTTP.NewPresenceHandler(presenceUC),
		presenceWS.NewPresenceHandler(wsManager, presenceUC),
	)
	handler.RegisterRoutes(e, api)
	riskHTTP.NewRiskHandler(riskUC).RegisterRoutes(api)

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	logger.Info("Starting service",
		logger.String("service", configs.App.Name),
		logger.String("address", addr),
		logger.Bool("redis", configs.Redis.Enabled),
		logger.Bool("postgres", configs.Database.Enabled),
		logger.Bool("nsq", configs.NSQ.Enabled),
		logger.Duration("sink_timeout", configs.Presence.SinkTimeout))

	start := time.Now()
	err = server.NewGracefulServer(e, zapLogger, addr, configs.Server.ShutdownTimeout).Run(ctx)
	logger.Info("Service stopped", logger.Duration("uptime", time.Since(start)))
	return err
}
