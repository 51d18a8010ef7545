package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeLeave         = "leave"
	TypeMission       = "mission"
	TypeBonus         = "bonus"
	TypePenalty       = "penalty"
	TypeOvertime      = "overtime"
	TypeMealAllowance = "meal_allowance"
	TypeLoan          = "loan"
)

const (
	ActionAdvance = "advance"
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// Request adalah pengajuan karyawan yang melewati rantai approval.
// Status dan CurrentApproverLevel hanya boleh diubah lewat ApprovalChain.
type Request struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID        `gorm:"type:uuid;not null;index:idx_requests_employee_status"`
	RequestType string           `gorm:"type:varchar(30);not null;index"`
	Amount      *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Description string           `gorm:"type:text"`
	StartDate   *time.Time       `gorm:"type:date"`
	EndDate     *time.Time       `gorm:"type:date"`

	Status               string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_requests_employee_status;index:idx_requests_status_level"`
	CurrentApproverLevel int        `gorm:"not null;default:1;index:idx_requests_status_level"`
	RejectionReason      *string    `gorm:"type:text"`
	DecidedBy            *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt           *time.Time `gorm:"index"`

	// Version dinaikkan setiap transisi, dipakai sebagai guard compare-and-swap.
	Version int `gorm:"not null;default:1"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Approvals []ApprovalStep `gorm:"foreignKey:RequestID"`
}

// ApprovalStep adalah jejak audit satu aksi approver.
type ApprovalStep struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	Level     int       `gorm:"not null"`
	Role      string    `gorm:"type:varchar(50);not null"`
	Action    string    `gorm:"type:varchar(20);not null"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	Reason    *string   `gorm:"type:text"`
	CreatedAt time.Time
}

func (ApprovalStep) TableName() string {
	return "request_approvals"
}

func (r Request) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

// RequiresAmount: tipe yang mempengaruhi gaji wajib punya nominal.
func RequiresAmount(requestType string) bool {
	switch requestType {
	case TypeBonus, TypePenalty, TypeOvertime, TypeMealAllowance, TypeLoan:
		return true
	default:
		return false
	}
}

func IsValidType(requestType string) bool {
	switch requestType {
	case TypeLeave, TypeMission:
		return true
	default:
		return RequiresAmount(requestType)
	}
}

func AllTypes() []string {
	return []string{TypeLeave, TypeMission, TypeBonus, TypePenalty, TypeOvertime, TypeMealAllowance, TypeLoan}
}
