package departmenterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
	ErrDepartmentNameExists = apperror.New(
		apperror.CodeConflict,
		"Department name already exists",
		http.StatusConflict,
	)
	ErrEmptyUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"At least one field must be provided",
		http.StatusBadRequest,
	)
)
