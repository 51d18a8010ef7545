package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// ErrOutboxEventNotFound dikembalikan Requeue bila id tidak ada atau event sudah terkirim.
var ErrOutboxEventNotFound = errors.New("outbox event not found or already sent")

// OutboxEvent ditulis dalam transaksi yang sama dengan perubahan domain,
// lalu dikirim ke kafka oleh worker.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

type StatusCount struct {
	Status    string
	Count     int64
	Exhausted int64 // gagal dan sudah mencapai batas retry
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit, maxRetries int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
	CountByStatus(ctx context.Context, maxRetries int) ([]StatusCount, error)
	Requeue(ctx context.Context, id string) error
}

const (
	insertOutboxSQL = `
INSERT INTO outbox_events (
	id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status,
	created_at, updated_at
) VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, NOW(), NOW())`

	// retry_count < maxRetries hanya berlaku bila maxRetries > 0.
	listDueOutboxSQL = `
SELECT
	id::text,
	COALESCE(request_id, ''),
	aggregate_type,
	aggregate_id::text,
	event_type,
	topic,
	payload,
	status,
	retry_count,
	COALESCE(next_retry_at, created_at)
FROM outbox_events
WHERE status IN ($1, $2)
	AND (next_retry_at IS NULL OR next_retry_at <= NOW())
	AND ($3 <= 0 OR retry_count < $3)
ORDER BY created_at ASC
LIMIT $4`

	markSentSQL = `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
WHERE id = $1`

	// backoff linear 15 detik per percobaan, maksimal 150 detik
	markFailedSQL = `
UPDATE outbox_events
SET
	status = $2,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds'),
	updated_at = NOW()
WHERE id = $1`

	countByStatusSQL = `
SELECT
	status,
	COUNT(*),
	COUNT(*) FILTER (WHERE status = $1 AND $2 > 0 AND retry_count >= $2)
FROM outbox_events
GROUP BY status
ORDER BY status`

	requeueSQL = `
UPDATE outbox_events
SET status = $2, retry_count = 0, next_retry_at = NULL, error_message = NULL, updated_at = NOW()
WHERE id = $1 AND status <> $3`
)

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

// Create wajib dipanggil lewat WithTx agar ikut transaksi domain.
func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	_, err := r.execer().ExecContext(ctx, insertOutboxSQL,
		event.ID, event.RequestID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

func (r *outboxRepository) ListPending(ctx context.Context, limit, maxRetries int) ([]OutboxEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, listDueOutboxSQL, OutboxStatusPending, OutboxStatusFailed, maxRetries, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		err := rows.Scan(
			&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID, &e.EventType,
			&e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, markSentSQL, id, OutboxStatusSent)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	_, err := r.db.ExecContext(ctx, markFailedSQL, id, OutboxStatusFailed, reason)
	return err
}

func (r *outboxRepository) CountByStatus(ctx context.Context, maxRetries int) ([]StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, countByStatusSQL, OutboxStatusFailed, maxRetries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StatusCount
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count, &sc.Exhausted); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// Requeue mengembalikan event gagal ke antrian dengan retry_count 0.
func (r *outboxRepository) Requeue(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, requeueSQL, id, OutboxStatusPending, OutboxStatusSent)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOutboxEventNotFound
	}
	return nil
}

func (r *outboxRepository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func ValidateOutboxEvent(event OutboxEvent) error {
	switch {
	case event.ID == "":
		return errors.New("outbox id is required")
	case event.Topic == "":
		return errors.New("outbox topic is required")
	case len(event.Payload) == 0:
		return errors.New("outbox payload is required")
	}

	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
