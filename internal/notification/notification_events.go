package notification

import (
	"fmt"
	"strings"

	"go-hrms/internal/events"
	"go-hrms/internal/request"
)

var monthNames = [...]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func requestTypeLabel(t string) string {
	return strings.ReplaceAll(t, "_", " ")
}

// FromRequestDecided membangun notifikasi untuk pemilik request.
// Satu request hanya diputus sekali, jadi entity id cukup sebagai source.
func FromRequestDecided(e events.RequestDecidedEvent) CreateNotificationInput {
	in := CreateNotificationInput{
		EmployeeID: e.EmployeeID,
		Kind:       KindRequestDecided,
		SourceID:   e.EntityID,
	}

	label := requestTypeLabel(e.RequestType)
	switch e.Status {
	case request.StatusApproved:
		in.Title = fmt.Sprintf("Your %s request was approved", label)
		in.Message = fmt.Sprintf("Your %s request has been approved by %s.", label, e.DecidedRole)
		if e.Amount != nil {
			in.Message = fmt.Sprintf("Your %s request for %s has been approved by %s.", label, *e.Amount, e.DecidedRole)
		}
	default:
		in.Title = fmt.Sprintf("Your %s request was rejected", label)
		in.Message = fmt.Sprintf("Your %s request has been rejected by %s.", label, e.DecidedRole)
		if e.RejectionReason != nil {
			in.Message += " Reason: " + *e.RejectionReason
		}
	}
	return in
}

func FromSalaryRecordCreated(e events.SalaryRecordCreatedEvent) CreateNotificationInput {
	period := fmt.Sprintf("%d/%d", e.Month, e.Year)
	if e.Month >= 1 && e.Month <= 12 {
		period = fmt.Sprintf("%s %d", monthNames[e.Month], e.Year)
	}
	return CreateNotificationInput{
		EmployeeID: e.EmployeeID,
		Kind:       KindSalaryRecord,
		SourceID:   e.RecordID,
		Title:      "Salary record available for " + period,
		Message:    fmt.Sprintf("Your salary for %s has been recorded with a total of %s.", period, e.TotalSalary),
	}
}

func FromEmployeeCreated(e events.EmployeeCreatedEvent) CreateNotificationInput {
	return CreateNotificationInput{
		EmployeeID: e.EmployeeID,
		Kind:       KindWelcome,
		SourceID:   e.EmployeeID,
		Title:      "Welcome aboard",
		Message:    fmt.Sprintf("Your employee profile %s has been created.", e.EmployeeCode),
	}
}
