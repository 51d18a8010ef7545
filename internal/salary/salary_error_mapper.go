package salary

import (
	"errors"

	salaryerrors "go-hrms/internal/salary/errors"
	"go-hrms/internal/shared/dberr"

	"gorm.io/gorm"
)

const uniqueEmployeePeriod = "uq_salary_records_employee_period"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || dberr.IsForeignKeyViolation(err) {
		return salaryerrors.ErrEmployeeNotFound
	}
	if dberr.IsUniqueViolation(err, uniqueEmployeePeriod) {
		return salaryerrors.ErrSalaryRecordExists
	}
	return err
}
