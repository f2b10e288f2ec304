package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/twigalabs/rangertrack/internal/pkg/config"
	"github.com/twigalabs/rangertrack/internal/pkg/database"
	"github.com/twigalabs/rangertrack/internal/pkg/health"
	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/metrics"
	"github.com/twigalabs/rangertrack/internal/pkg/middleware"
	natspkg "github.com/twigalabs/rangertrack/internal/pkg/nats"
	nrpkg "github.com/twigalabs/rangertrack/internal/pkg/newrelic"
	"github.com/twigalabs/rangertrack/internal/pkg/ranger"
	"github.com/twigalabs/rangertrack/internal/pkg/server"
	"github.com/twigalabs/rangertrack/services/tracking/gateway"
	"github.com/twigalabs/rangertrack/services/tracking/handler"
	"github.com/twigalabs/rangertrack/services/tracking/repository"
	"github.com/twigalabs/rangertrack/services/tracking/usecase"
)

const appName = "rangertrack-tracking"

func main() {
	configs := config.InitConfig("")

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	natsProducer, err := natspkg.NewProducer(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to create NATS producer", logger.Err(err))
	}

	// Repositories
	lastKnownRepo := repository.NewLastKnownRepository(configs, redisClient)
	trackRepo := repository.NewTrackRepository(configs, postgresClient)

	// Gateways
	rangerClient := ranger.NewClient(configs.Ranger, zapLogger)
	rangerGW := gateway.NewRangerGateway(configs, rangerClient, zapLogger)
	eventsGW := gateway.NewEventsGateway(natsProducer)

	// UseCase
	trackingUC := usecase.NewTrackingUsecase(configs, lastKnownRepo, trackRepo, rangerGW, eventsGW)

	// Handlers
	trackingHandler := handler.NewHandler(trackingUC, natsClient, configs)
	if err := trackingHandler.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Background fleet refresh
	refreshCtx, cancelRefresh := context.WithCancel(context.Background())
	go trackingUC.StartRefreshLoop(refreshCtx)

	// Echo router
	e := echo.New()
	e.HideBanner = true

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(metrics.EchoMiddleware(appName))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	trackingHandler.RegisterRoutes(e)

	// Cleanup ordering: stop consumers and the refresh loop before the
	// connections they use are closed by the deferred Close calls
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		cancelRefresh()
		trackingHandler.Stop()
		natsProducer.Stop()
		return nil
	})

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	shutdownManager.Shutdown(shutdownCtx)
}
