package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// base_salary -> Base Salary
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// MapValidationError mengubah validator.ValidationErrors menjadi AppError.
// Pesan diambil dari field pertama, seluruh pelanggaran ikut di Details.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	violations := make([]FieldViolation, 0, len(errs))
	for _, fe := range errs {
		violations = append(violations, FieldViolation{Field: fe.Field(), Rule: fe.Tag()})
	}

	first := errs[0]
	field := formatFieldName(first.Field())

	var appErr *AppError
	switch first.Tag() {
	case "required", "required_if":
		appErr = RequiredField(field)
	default:
		appErr = InvalidField(field)
	}
	return appErr.WithDetails(violations)
}
