package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Employee struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeCode string          `gorm:"type:varchar(30);not null;uniqueIndex:uq_employee_code"`
	UserID       *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	FullName     string          `gorm:"type:varchar(150);not null"`
	Email        string          `gorm:"type:varchar(150);not null;uniqueIndex:uq_employee_email"`
	Phone        string          `gorm:"type:varchar(30)"`
	DepartmentID *uuid.UUID      `gorm:"type:uuid;index"`
	Position     string          `gorm:"type:varchar(100)"`
	HireDate     time.Time       `gorm:"type:date;not null"`
	BaseSalary   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	// path dokumen yang sudah diupload; penyimpanan file di luar service ini
	Documents []string `gorm:"type:jsonb;serializer:json"`

	Department *Department `gorm:"foreignKey:DepartmentID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Department hanya untuk preload nama departemen.
type Department struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}
