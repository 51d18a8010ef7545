package app

import (
	"context"

	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"
	"go-hrms/internal/messaging/kafka/consumer"
	"go-hrms/internal/metrics"
	"go-hrms/internal/notification"
	"go-hrms/internal/shared/connection"

	"go.uber.org/zap"
)

func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	notificationRepo := notification.NewRepository(gormDB)
	notificationService := notification.NewService(notificationRepo, metrics.NewCollector(), zap.L())

	reader := consumer.NewReader(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeNotifications(ctx, reader, notificationService, logger)
	}()

	sig := bootstrap.WaitForSignal()
	logger.Info("consumer shutting down", zap.String("signal", sig.String()))
	cancel()
	<-done

	return nil
}
