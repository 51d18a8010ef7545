package events

import "time"

const (
	RequestDecidedTopic     = "hr.request.decided.v1"
	RequestDecidedEventType = "request_decided"
)

// RequestDecidedEvent dikirim sekali saat request mencapai status akhir.
type RequestDecidedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	EntityID        string    `json:"entity_id"`
	EmployeeID      string    `json:"employee_id"`
	RequestType     string    `json:"request_type"`
	Status          string    `json:"status"`
	Amount          *string   `json:"amount,omitempty"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	DecidedBy       string    `json:"decided_by"`
	DecidedRole     string    `json:"decided_role"`
	OccurredAt      time.Time `json:"occurred_at"`
}
