package kafka

import "time"

// OutboxEventModel hanya dipakai untuk migrasi tabel outbox_events.
// Akses data tetap lewat OutboxRepository (database/sql).
type OutboxEventModel struct {
	ID            string     `gorm:"type:uuid;primaryKey"`
	RequestID     *string    `gorm:"type:varchar(64)"`
	AggregateType string     `gorm:"type:varchar(50);not null"`
	AggregateID   string     `gorm:"type:uuid;not null;index"`
	EventType     string     `gorm:"type:varchar(100);not null"`
	Topic         string     `gorm:"type:varchar(150);not null"`
	Payload       []byte     `gorm:"type:jsonb;not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:pending;index:idx_outbox_status_created,priority:1"`
	RetryCount    int        `gorm:"not null;default:0"`
	NextRetryAt   *time.Time `gorm:"index"`
	ErrorMessage  *string    `gorm:"type:varchar(500)"`
	ProcessedAt   *time.Time `gorm:"column:processed_at"`
	CreatedAt     time.Time  `gorm:"not null;index:idx_outbox_status_created,priority:2"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

func (OutboxEventModel) TableName() string {
	return "outbox_events"
}
