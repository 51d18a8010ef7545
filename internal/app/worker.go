package app

import (
	"context"

	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/messaging/kafka/producer"
	"go-hrms/internal/metrics"
	"go-hrms/internal/shared/connection"

	"go.uber.org/zap"
)

func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(
			ctx,
			outboxRepo,
			kafkaWriter,
			logger,
			producer.WorkerConfig{
				PollInterval: cfg.Kafka.OutboxPollInterval,
				BatchSize:    cfg.Kafka.OutboxBatchSize,
				MaxRetries:   cfg.Kafka.MaxRetries,
			},
			metrics.NewCollector(),
		)
	}()

	sig := bootstrap.WaitForSignal()
	logger.Info("worker shutting down", zap.String("signal", sig.String()))
	cancel()
	<-done

	return nil
}
