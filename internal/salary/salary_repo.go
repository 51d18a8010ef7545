package salary

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *SalaryRecord) error
	FindByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error)
	FindByPeriod(ctx context.Context, month, year int) ([]SalaryRecord, error)
	FindByYear(ctx context.Context, year int) ([]SalaryRecord, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, record *SalaryRecord) error {
	return r.conn(ctx).Create(record).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.conn(ctx).
		Scopes(scope.Employee(employeeID)).
		Order("year DESC, month DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByPeriod(ctx context.Context, month, year int) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.conn(ctx).
		Where("month = ? AND year = ?", month, year).
		Find(&records).Error
	return records, err
}

func (r *repository) FindByYear(ctx context.Context, year int) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.conn(ctx).
		Where("year = ?", year).
		Order("month ASC").
		Find(&records).Error
	return records, err
}
