package request

import (
	"errors"

	requesterrors "go-hrms/internal/request/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return requesterrors.ErrRequestNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23503: employee_id tidak ada di tabel employees
		if pgErr.Code == "23503" {
			return requesterrors.ErrEmployeeNotFound
		}
	}

	return err
}
