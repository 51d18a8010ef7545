package events

import "time"

const (
	EmployeeCreatedTopic     = "hr.employee.lifecycle.v1"
	EmployeeCreatedEventType = "employee_created"
)

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	DepartmentID string    `json:"department_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
