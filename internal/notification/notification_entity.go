package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindRequestDecided = "request_decided"
	KindSalaryRecord   = "salary_record"
	KindWelcome        = "employee_welcome"
)

// Notification unik per (kind, source_id) sehingga event kafka yang
// terkirim ulang tidak menghasilkan notifikasi ganda.
type Notification struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind       string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_notification_source,priority:1"`
	SourceID   string     `gorm:"type:varchar(100);not null;uniqueIndex:uq_notification_source,priority:2"`
	Title      string     `gorm:"type:varchar(200);not null"`
	Message    string     `gorm:"type:text;not null"`
	IsRead     bool       `gorm:"not null;default:false"`
	ReadAt     *time.Time `gorm:"type:timestamptz"`
	CreatedAt  time.Time  `gorm:"not null"`
}

func (Notification) TableName() string {
	return "notifications"
}
