package employee

import (
	"errors"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/shared/dberr"

	"gorm.io/gorm"
)

const (
	uniqueEmployeeCode  = "uq_employee_code"
	uniqueEmployeeEmail = "uq_employee_email"
)

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case dberr.IsUniqueViolation(err, uniqueEmployeeCode):
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	case dberr.IsUniqueViolation(err, uniqueEmployeeEmail):
		return employeeerrors.ErrEmployeeAlreadyExists
	case dberr.IsForeignKeyViolation(err):
		// department_id menunjuk ke departemen yang tidak ada
		return employeeerrors.ErrDepartmentNotFound
	}
	return err
}
