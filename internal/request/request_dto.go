package request

import "github.com/shopspring/decimal"

type CreateRequestRequest struct {
	RequestType string           `json:"request_type" binding:"required,oneof=leave mission bonus penalty overtime meal_allowance loan"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description" binding:"max=2000"`
	StartDate   string           `json:"start_date"`
	EndDate     string           `json:"end_date"`
}

type RejectRequestRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ListRequestsFilter struct {
	Status      string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	RequestType string `form:"request_type" binding:"omitempty,oneof=leave mission bonus penalty overtime meal_allowance loan"`
	EmployeeID  string `form:"employee_id" binding:"omitempty,uuid"`
	Page        int    `form:"-"`
	PageSize    int    `form:"-"`
}

type ApprovalStepResponse struct {
	Level     int     `json:"level"`
	Role      string  `json:"role"`
	Action    string  `json:"action"`
	ActorID   string  `json:"actor_id"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type RequestResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	RequestType string  `json:"request_type"`
	Amount      *string `json:"amount,omitempty"`
	Description string  `json:"description,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Status      string  `json:"status"`
	// hanya terisi selama status pending
	CurrentApproverLevel *int                   `json:"current_approver_level,omitempty"`
	RejectionReason      *string                `json:"rejection_reason,omitempty"`
	DecidedBy            *string                `json:"decided_by,omitempty"`
	ApprovedAt           *string                `json:"approved_at,omitempty"`
	CreatedAt            string                 `json:"created_at"`
	History              []ApprovalStepResponse `json:"history,omitempty"`
}
