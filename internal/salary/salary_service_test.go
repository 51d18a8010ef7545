package salary_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/config"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/request"
	"go-hrms/internal/salary"
	salaryerrors "go-hrms/internal/salary/errors"
	salaryMock "go-hrms/internal/salary/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   salary.Service
	repo      *salaryMock.MockRepository
	employees *salaryMock.MockEmployeeLookup
	requests  *salaryMock.MockApprovedRequestSource
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T, policy string) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	deps := &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      salaryMock.NewMockRepository(ctrl),
		employees: salaryMock.NewMockEmployeeLookup(ctrl),
		requests:  salaryMock.NewMockApprovedRequestSource(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
	}
	deps.service = salary.NewService(db, deps.repo, deps.employees, deps.requests, salary.Options{
		PeriodPolicy: policy,
		Outbox:       deps.outbox,
	})
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestSalaryService_Calculate(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success approved within period", func(t *testing.T) {
		deps := setupServiceTest(t, config.SalaryPeriodApprovedWithin)
		defer deps.db.Close()

		deps.employees.EXPECT().FindBaseSalary(gomock.Any(), employeeID).Return(decimal.RequireFromString("5000.00"), nil)
		deps.requests.EXPECT().
			FindApprovedByEmployee(gomock.Any(), employeeID, salary.PeriodWindow(config.SalaryPeriodApprovedWithin, 5, 2026)).
			Return([]request.Request{
				approved(request.TypeBonus, "300.00"),
				approved(request.TypePenalty, "50.00"),
				approved(request.TypeOvertime, "120.00"),
			}, nil)

		resp, err := deps.service.Calculate(ctx, employeeID, 5, 2026)

		assert.NoError(t, err)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.Equal(t, "5000.00", resp.BaseSalary)
		assert.Equal(t, "300.00", resp.Bonuses)
		assert.Equal(t, "50.00", resp.Deductions)
		assert.Equal(t, "120.00", resp.OvertimePay)
		assert.Equal(t, "5370.00", resp.TotalSalary)
		assert.Equal(t, config.SalaryPeriodApprovedWithin, resp.PeriodPolicy)
	})

	t.Run("all time policy passes empty window", func(t *testing.T) {
		deps := setupServiceTest(t, config.SalaryPeriodAllTime)
		defer deps.db.Close()

		deps.employees.EXPECT().FindBaseSalary(gomock.Any(), employeeID).Return(decimal.NewFromInt(100), nil)
		deps.requests.EXPECT().
			FindApprovedByEmployee(gomock.Any(), employeeID, request.ApprovedWindow{}).
			Return(nil, nil)

		resp, err := deps.service.Calculate(ctx, employeeID, 1, 2024)

		assert.NoError(t, err)
		assert.Equal(t, "100.00", resp.TotalSalary)
	})

	t.Run("negative employee not found", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		defer deps.db.Close()

		deps.employees.EXPECT().FindBaseSalary(gomock.Any(), employeeID).Return(decimal.Zero, gorm.ErrRecordNotFound)

		_, err := deps.service.Calculate(ctx, employeeID, 1, 2026)

		assert.ErrorIs(t, err, salaryerrors.ErrEmployeeNotFound)
	})

	t.Run("negative invalid month", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		defer deps.db.Close()

		_, err := deps.service.Calculate(ctx, employeeID, 13, 2026)

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidMonth)
	})

	t.Run("negative invalid year", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		defer deps.db.Close()

		_, err := deps.service.Calculate(ctx, employeeID, 1, 0)

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidYear)
	})

	t.Run("negative request source error", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		defer deps.db.Close()

		deps.employees.EXPECT().FindBaseSalary(gomock.Any(), employeeID).Return(decimal.NewFromInt(1), nil)
		deps.requests.EXPECT().FindApprovedByEmployee(gomock.Any(), employeeID, gomock.Any()).Return(nil, errors.New("db down"))

		_, err := deps.service.Calculate(ctx, employeeID, 2, 2026)

		assert.EqualError(t, err, "db down")
	})
}

func TestSalaryService_Calculate_CallerCancelDoesNotAbortSharedWork(t *testing.T) {
	deps := setupServiceTest(t, config.SalaryPeriodApprovedWithin)
	defer deps.db.Close()

	employeeID := uuid.New().String()
	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	var workErr error

	deps.employees.EXPECT().FindBaseSalary(gomock.Any(), employeeID).
		DoAndReturn(func(ctx context.Context, _ string) (decimal.Decimal, error) {
			close(entered)
			<-release
			workErr = ctx.Err()
			return decimal.NewFromInt(1000), nil
		})
	deps.requests.EXPECT().FindApprovedByEmployee(gomock.Any(), employeeID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ request.ApprovedWindow) ([]request.Request, error) {
			defer close(done)
			return nil, ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := deps.service.Calculate(ctx, employeeID, 3, 2025)
		errCh <- err
	}()

	<-entered
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	close(release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shared computation did not finish")
	}
	assert.NoError(t, workErr)
}

func TestSalaryService_CreateRecord(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("success recomputes and queues event", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		defer deps.db.Close()

		deps.employees.EXPECT().FindBaseSalary(ctx, employeeID).Return(decimal.RequireFromString("5000"), nil)
		deps.requests.EXPECT().FindApprovedByEmployee(ctx, employeeID, gomock.Any()).Return([]request.Request{
			approved(request.TypeMealAllowance, "45.50"),
		}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *salary.SalaryRecord) error {
				assert.Equal(t, employeeID, r.EmployeeID.String())
				assert.Equal(t, "5045.50", r.TotalSalary.StringFixed(2))
				assert.Equal(t, config.SalaryPeriodApprovedWithin, r.PeriodPolicy)
				assert.Equal(t, actorID, r.CreatedBy.String())
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.SalaryRecordCreatedTopic, e.Topic)
				assert.Equal(t, "salary_record", e.AggregateType)
				return nil
			})

		resp, err := deps.service.CreateRecord(ctx, actorID, salary.CreateSalaryRecordRequest{
			EmployeeID: employeeID,
			Month:      4,
			Year:       2026,
		})

		assert.NoError(t, err)
		assert.Equal(t, "5045.50", resp.TotalSalary)
		assert.Equal(t, "45.50", resp.MealAllowance)
		assert.Equal(t, actorID, *resp.CreatedBy)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate period", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		defer deps.db.Close()

		deps.employees.EXPECT().FindBaseSalary(ctx, employeeID).Return(decimal.NewFromInt(10), nil)
		deps.requests.EXPECT().FindApprovedByEmployee(ctx, employeeID, gomock.Any()).Return(nil, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_salary_records_employee_period",
		})

		_, err := deps.service.CreateRecord(ctx, actorID, salary.CreateSalaryRecordRequest{
			EmployeeID: employeeID,
			Month:      4,
			Year:       2026,
		})

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryRecordExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown employee skips transaction", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		defer deps.db.Close()

		deps.employees.EXPECT().FindBaseSalary(ctx, employeeID).Return(decimal.Zero, gorm.ErrRecordNotFound)

		_, err := deps.service.CreateRecord(ctx, actorID, salary.CreateSalaryRecordRequest{
			EmployeeID: employeeID,
			Month:      4,
			Year:       2026,
		})

		assert.ErrorIs(t, err, salaryerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid actor", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		defer deps.db.Close()

		_, err := deps.service.CreateRecord(ctx, "bad", salary.CreateSalaryRecordRequest{
			EmployeeID: employeeID,
			Month:      4,
			Year:       2026,
		})

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidActorID)
	})
}

func TestSalaryService_GetRecordsByEmployee(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		defer deps.db.Close()

		deps.repo.EXPECT().FindByEmployee(ctx, employeeID.String()).Return([]salary.SalaryRecord{
			{
				ID:          uuid.New(),
				EmployeeID:  employeeID,
				Month:       3,
				Year:        2026,
				BaseSalary:  decimal.NewFromInt(5000),
				TotalSalary: decimal.RequireFromString("5370"),
			},
		}, nil)

		resp, err := deps.service.GetRecordsByEmployee(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "5370.00", resp[0].TotalSalary)
		assert.Equal(t, "0.00", resp[0].Bonuses)
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupServiceTest(t, "")
		defer deps.db.Close()

		_, err := deps.service.GetRecordsByEmployee(ctx, "x")

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidEmployeeID)
	})
}
