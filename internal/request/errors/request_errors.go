package requesterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee profile not found",
		http.StatusNotFound,
	)
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidRequestType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request_type",
		http.StatusBadRequest,
	)
	ErrAmountRequired = apperror.New(
		apperror.CodeInvalidInput,
		"amount is required for this request_type",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required when rejecting a request",
		http.StatusBadRequest,
	)
	ErrRoleNotInChain = apperror.New(
		apperror.CodeForbidden,
		"role is not part of the approval chain",
		http.StatusForbidden,
	)
	ErrNotYourTurn = apperror.New(
		apperror.CodeForbidden,
		"not your turn to act on this request",
		http.StatusForbidden,
	)
	ErrRequestNotPending = apperror.New(
		apperror.CodeInvalidState,
		"request is no longer pending",
		http.StatusConflict,
	)
	ErrConcurrentUpdate = apperror.New(
		apperror.CodeConflict,
		"request was modified by another approver, reload and retry",
		http.StatusConflict,
	)
)
