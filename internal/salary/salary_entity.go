package salary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryRecord adalah snapshot hasil Compute yang disimpan. Tidak pernah diupdate.
type SalaryRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_salary_records_employee_period,priority:1"`
	Month         int             `gorm:"not null;uniqueIndex:uq_salary_records_employee_period,priority:2;index:idx_salary_records_period,priority:2"`
	Year          int             `gorm:"not null;uniqueIndex:uq_salary_records_employee_period,priority:3;index:idx_salary_records_period,priority:1"`
	BaseSalary    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Bonuses       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Deductions    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	OvertimePay   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	MealAllowance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalSalary   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PeriodPolicy  string          `gorm:"type:varchar(30);not null"`
	CreatedBy     *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt     time.Time
}
