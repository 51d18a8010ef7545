package reporterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeValidation,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeValidation,
		"year must be a positive number",
		http.StatusBadRequest,
	)
)
