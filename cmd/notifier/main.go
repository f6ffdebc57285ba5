package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/canyfix/repairdesk/internal/pkg/config"
	"github.com/canyfix/repairdesk/internal/pkg/constants"
	"github.com/canyfix/repairdesk/internal/pkg/logger"
	nsqpkg "github.com/canyfix/repairdesk/internal/pkg/nsq"
	"go.uber.org/zap"
)

func main() {
	appName := "repair-notifier"
	configs := config.InitConfig("config/repair.env")
	configs.App.Name = appName

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	d := newDispatcher(configs)
	if d.client == nil {
		zapLogger.Warn("SMS_PROVIDER_URL is not set, OTP codes will only be logged")
	}

	consumer, err := nsqpkg.NewConsumer(constants.TopicOTPDispatch, configs.NSQ.Channel, d.handle)
	if err != nil {
		zapLogger.Fatal("Failed to create NSQ consumer", zap.Error(err))
	}
	if err := consumer.Connect(configs.NSQ.Address, configs.NSQ.LookupdAddr); err != nil {
		zapLogger.Fatal("Failed to connect NSQ consumer", zap.Error(err))
	}

	zapLogger.Info("Notifier started",
		zap.String("topic", constants.TopicOTPDispatch),
		zap.String("channel", configs.NSQ.Channel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	zapLogger.Info("Stopping notifier")
	consumer.Stop()
}
