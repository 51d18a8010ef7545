package notificationerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notification not found",
		http.StatusNotFound,
	)
	ErrInvalidNotificationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid notification ID",
		http.StatusBadRequest,
	)
	ErrNotificationExists = apperror.New(
		apperror.CodeConflict,
		"Notification already stored for this event",
		http.StatusConflict,
	)
	ErrEmployeeRequired = apperror.New(
		apperror.CodeForbidden,
		"Notifications are only available to employees",
		http.StatusForbidden,
	)
	ErrInvalidNotification = apperror.New(
		apperror.CodeInvalidInput,
		"Notification employee, kind and source are required",
		http.StatusBadRequest,
	)
)
