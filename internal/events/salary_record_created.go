package events

import "time"

const (
	SalaryRecordCreatedTopic     = "hr.salary.record.created.v1"
	SalaryRecordCreatedEventType = "salary_record_created"
)

type SalaryRecordCreatedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	RecordID    string    `json:"record_id"`
	EmployeeID  string    `json:"employee_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	TotalSalary string    `json:"total_salary"`
	OccurredAt  time.Time `json:"occurred_at"`
}
