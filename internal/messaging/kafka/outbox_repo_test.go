package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts valid event", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := kafka.NewOutboxRepository(db)
		event := kafka.OutboxEvent{
			ID:            "6a1f0c9e-4b8d-4a55-8f4e-9b2f1d7c3e01",
			RequestID:     "rid-1",
			AggregateType: "request",
			AggregateID:   "8d3c2b1a-0f9e-4d8c-b7a6-5e4d3c2b1a00",
			EventType:     "request_decided",
			Topic:         "hr.request.decided.v1",
			Payload:       []byte(`{"status":"approved"}`),
			Status:        kafka.OutboxStatusPending,
		}

		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(event.ID, event.RequestID, event.AggregateType, event.AggregateID,
				event.EventType, event.Topic, event.Payload, event.Status).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.Create(ctx, event))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects event without payload", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := kafka.NewOutboxRepository(db)
		err = repo.Create(ctx, kafka.OutboxEvent{ID: "x", Topic: "t", Status: kafka.OutboxStatusPending})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("uses transaction when bound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO outbox_events").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		assert.NoError(t, err)

		repo := kafka.NewOutboxRepository(db).WithTx(tx)
		err = repo.Create(ctx, kafka.OutboxEvent{ID: "x", Topic: "t", Payload: []byte(`{}`), Status: kafka.OutboxStatusPending})
		assert.NoError(t, err)
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	ctx := context.Background()

	t.Run("scans due events", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{
			"id", "request_id", "aggregate_type", "aggregate_id", "event_type",
			"topic", "payload", "status", "retry_count", "next_retry_at",
		}).AddRow("evt-1", "rid-1", "request", "req-1", "request_decided",
			"hr.request.decided.v1", []byte(`{}`), kafka.OutboxStatusFailed, 2, due)

		mock.ExpectQuery("FROM outbox_events").
			WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 5, 20).
			WillReturnRows(rows)

		events, err := kafka.NewOutboxRepository(db).ListPending(ctx, 20, 5)

		assert.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, "rid-1", events[0].RequestID)
		assert.Equal(t, 2, events[0].RetryCount)
		assert.Equal(t, due, events[0].NextRetryAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM outbox_events").WillReturnError(errors.New("db down"))

		_, err = kafka.NewOutboxRepository(db).ListPending(ctx, 0, 0)
		assert.Error(t, err)
	})
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "x", Topic: "t", Payload: []byte(`{}`), Status: kafka.OutboxStatusSent}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	invalid := valid
	invalid.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(invalid))

	noTopic := valid
	noTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noTopic))
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-1", kafka.OutboxStatusFailed, "broker unavailable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "evt-1", "broker unavailable")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"status", "count", "exhausted"}).
		AddRow(kafka.OutboxStatusFailed, int64(3), int64(1)).
		AddRow(kafka.OutboxStatusPending, int64(4), int64(0)).
		AddRow(kafka.OutboxStatusSent, int64(10), int64(0))

	mock.ExpectQuery("GROUP BY status").
		WithArgs(kafka.OutboxStatusFailed, 5).
		WillReturnRows(rows)

	counts, err := kafka.NewOutboxRepository(db).CountByStatus(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, counts, 3)
	assert.Equal(t, kafka.StatusCount{Status: kafka.OutboxStatusFailed, Count: 3, Exhausted: 1}, counts[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Requeue(t *testing.T) {
	ctx := context.Background()

	t.Run("resets failed event", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE outbox_events").
			WithArgs("evt-1", kafka.OutboxStatusPending, kafka.OutboxStatusSent).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, kafka.NewOutboxRepository(db).Requeue(ctx, "evt-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown or sent event", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE outbox_events").WillReturnResult(sqlmock.NewResult(0, 0))

		err = kafka.NewOutboxRepository(db).Requeue(ctx, "evt-404")
		assert.ErrorIs(t, err, kafka.ErrOutboxEventNotFound)
	})
}
