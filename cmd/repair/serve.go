package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/config"
	"github.com/canyfix/repairdesk/internal/pkg/database"
	"github.com/canyfix/repairdesk/internal/pkg/health"
	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/canyfix/repairdesk/internal/pkg/middleware"
	nrpkg "github.com/canyfix/repairdesk/internal/pkg/newrelic"
	nsqpkg "github.com/canyfix/repairdesk/internal/pkg/nsq"
	"github.com/canyfix/repairdesk/internal/pkg/server"
	"github.com/canyfix/repairdesk/services/repair/gateway"
	"github.com/canyfix/repairdesk/services/repair/handler"
	httpHandler "github.com/canyfix/repairdesk/services/repair/handler/http"
	"github.com/canyfix/repairdesk/services/repair/repository"
	"github.com/canyfix/repairdesk/services/repair/usecase"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		return fmt.Errorf("failed to create Zap logger: %w", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)
	if configs.OTP.FixedCode != "" {
		zapLogger.Warn("OTP_FIXED_CODE is set, every issued code is the same")
	}

	shutdown := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	shutdown.Register(func(context.Context) error { return postgresClient.Close() })

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	shutdown.Register(func(context.Context) error { return redisClient.Close() })

	// Initialize NSQ producer for OTP dispatch
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		return fmt.Errorf("failed to connect to NSQ: %w", err)
	}
	shutdown.Register(func(context.Context) error {
		producer.Stop()
		return nil
	})

	if nrApp != nil {
		shutdown.Register(func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	repairRepo := repository.NewRepairRepo(configs, postgresClient.GetDB(), redisClient)
	repairGW := gateway.NewRepairGW(producer)
	repairUC := usecase.NewRepairUC(repairRepo, repairGW, configs)

	h := handler.NewHandler(
		httpHandler.NewJobHandler(repairUC),
		httpHandler.NewOTPHandler(repairUC),
		httpHandler.NewAdminHandler(repairUC),
		redisClient.GetClient(),
		configs,
	)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(middleware.NewRelicMiddleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nsq", health.CheckFunc(func(context.Context) error { return producer.Ping() }))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	h.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	runErr := srv.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown finished with errors", zap.Error(err))
	}
	return runErr
}
