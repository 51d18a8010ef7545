package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/notification"
	notificationerrors "go-hrms/internal/notification/errors"
	"go-hrms/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NotificationTopics adalah topic yang dibaca consumer notifikasi.
var NotificationTopics = []string{
	events.RequestDecidedTopic,
	events.SalaryRecordCreatedTopic,
	events.EmployeeCreatedTopic,
}

// MessageReader dipenuhi oleh *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

var errUnknownTopic = errors.New("unknown topic")

// RetryBackoff adalah jeda awal sebelum pesan yang gagal disimpan dicoba
// ulang. Jeda berlipat dua sampai maxRetryBackoff.
var RetryBackoff = 2 * time.Second

const maxRetryBackoff = time.Minute

func NewReader(brokers []string, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: NotificationTopics,
		StartOffset: kafkago.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
	})
}

func ConsumeNotifications(
	ctx context.Context,
	reader MessageReader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer.notification")
	log.Info("notification consumer started", zap.Strings("topics", NotificationTopics))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		// offset tidak boleh maju melewati pesan yang belum tersimpan,
		// jadi pesan yang sama diulang sampai berhasil atau consumer berhenti.
		backoff := RetryBackoff
		for {
			_, err := HandleMessage(ctx, reader, notificationService, log, msg)
			if err == nil {
				break
			}
			log.Warn("retrying notification message",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				log.Info("notification consumer stopped")
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxRetryBackoff)
		}
	}
}

// HandleMessage memproses satu pesan. Pesan yang tidak bisa di-decode atau
// sudah pernah disimpan tetap di-commit. Kegagalan penyimpanan tidak di-commit
// dan dikembalikan sebagai error supaya pemanggil mengulang pesan yang sama.
func HandleMessage(
	ctx context.Context,
	reader MessageReader,
	notificationService notification.Service,
	log *zap.Logger,
	msg kafkago.Message,
) (bool, error) {
	input, rid, err := decodeNotification(msg)
	if err != nil {
		log.Error("decode notification event failed",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		commit(ctx, reader, log, msg)
		return false, nil
	}

	if rid != "" {
		ctx = contextutil.WithRequestID(ctx, rid)
	}

	if _, err := notificationService.Create(ctx, input); err != nil {
		if errors.Is(err, notificationerrors.ErrNotificationExists) {
			log.Warn("notification already stored for event, skipping",
				zap.String("kind", input.Kind),
				zap.String("source_id", input.SourceID),
			)
			commit(ctx, reader, log, msg)
			return false, nil
		}
		if errors.Is(err, notificationerrors.ErrInvalidNotification) {
			log.Error("notification event has invalid payload, skipping",
				zap.String("topic", msg.Topic),
				zap.String("employee_id", input.EmployeeID),
			)
			commit(ctx, reader, log, msg)
			return false, nil
		}

		log.Error("store notification failed",
			zap.String("request_id", rid),
			zap.String("employee_id", input.EmployeeID),
			zap.String("kind", input.Kind),
			zap.Error(err),
		)
		return false, fmt.Errorf("store notification: %w", err)
	}

	if !commit(ctx, reader, log, msg) {
		return true, nil
	}

	log.Info("notification stored from event",
		zap.String("request_id", rid),
		zap.String("topic", msg.Topic),
		zap.String("employee_id", input.EmployeeID),
		zap.String("kind", input.Kind),
	)
	return true, nil
}

func commit(ctx context.Context, reader MessageReader, log *zap.Logger, msg kafkago.Message) bool {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit notification message failed", zap.Error(err))
		return false
	}
	return true
}

func decodeNotification(msg kafkago.Message) (notification.CreateNotificationInput, string, error) {
	switch msg.Topic {
	case events.RequestDecidedTopic:
		var event events.RequestDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return notification.CreateNotificationInput{}, "", err
		}
		return notification.FromRequestDecided(event), event.RequestID, nil
	case events.SalaryRecordCreatedTopic:
		var event events.SalaryRecordCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return notification.CreateNotificationInput{}, "", err
		}
		return notification.FromSalaryRecordCreated(event), event.RequestID, nil
	case events.EmployeeCreatedTopic:
		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return notification.CreateNotificationInput{}, "", err
		}
		return notification.FromEmployeeCreated(event), event.RequestID, nil
	default:
		return notification.CreateNotificationInput{}, "", fmt.Errorf("%w: %s", errUnknownTopic, msg.Topic)
	}
}
