package notification_test

import (
	"testing"

	"go-hrms/internal/events"
	"go-hrms/internal/notification"

	"github.com/stretchr/testify/assert"
)

func TestFromRequestDecided(t *testing.T) {
	amount := "1500000.00"
	reason := "budget exhausted"

	approved := notification.FromRequestDecided(events.RequestDecidedEvent{
		EntityID:    "req-1",
		EmployeeID:  "emp-1",
		RequestType: "meal_allowance",
		Status:      "approved",
		Amount:      &amount,
		DecidedRole: "hr_manager",
	})
	assert.Equal(t, notification.KindRequestDecided, approved.Kind)
	assert.Equal(t, "req-1", approved.SourceID)
	assert.Equal(t, "emp-1", approved.EmployeeID)
	assert.Equal(t, "Your meal allowance request was approved", approved.Title)
	assert.Contains(t, approved.Message, "1500000.00")

	rejected := notification.FromRequestDecided(events.RequestDecidedEvent{
		EntityID:        "req-2",
		EmployeeID:      "emp-1",
		RequestType:     "leave",
		Status:          "rejected",
		RejectionReason: &reason,
		DecidedRole:     "supervisor",
	})
	assert.Equal(t, "Your leave request was rejected", rejected.Title)
	assert.Contains(t, rejected.Message, "Reason: budget exhausted")
}

func TestFromSalaryRecordCreated(t *testing.T) {
	in := notification.FromSalaryRecordCreated(events.SalaryRecordCreatedEvent{
		RecordID:    "rec-1",
		EmployeeID:  "emp-1",
		Month:       3,
		Year:        2025,
		TotalSalary: "5250000.00",
	})

	assert.Equal(t, notification.KindSalaryRecord, in.Kind)
	assert.Equal(t, "rec-1", in.SourceID)
	assert.Equal(t, "Salary record available for March 2025", in.Title)
	assert.Contains(t, in.Message, "5250000.00")
}

func TestFromEmployeeCreated(t *testing.T) {
	in := notification.FromEmployeeCreated(events.EmployeeCreatedEvent{
		EmployeeID:   "emp-9",
		EmployeeCode: "EMP-000009",
	})

	assert.Equal(t, notification.KindWelcome, in.Kind)
	assert.Equal(t, "emp-9", in.SourceID)
	assert.Contains(t, in.Message, "EMP-000009")
}
