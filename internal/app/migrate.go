package app

import (
	"go-hrms/internal/department"
	"go-hrms/internal/employee"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"
	"go-hrms/internal/request"
	"go-hrms/internal/salary"
	"go-hrms/internal/shared/counter"

	"gorm.io/gorm"
)

// Models mengikuti urutan foreign key: department sebelum employee,
// employee sebelum request dan salary record.
func Models() []any {
	return []any{
		&counter.SequenceCounter{},
		&department.Department{},
		&employee.Employee{},
		&request.Request{},
		&request.ApprovalStep{},
		&salary.SalaryRecord{},
		&notification.Notification{},
		&kafka.OutboxEventModel{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
