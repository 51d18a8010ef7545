package salary

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-hrms/internal/config"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/metrics"
	"go-hrms/internal/request"
	salaryerrors "go-hrms/internal/salary/errors"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// EmployeeLookup menyediakan gaji pokok karyawan.
// Mengembalikan gorm.ErrRecordNotFound bila karyawan tidak ada.
type EmployeeLookup interface {
	FindBaseSalary(ctx context.Context, employeeID string) (decimal.Decimal, error)
}

// ApprovedRequestSource dipenuhi oleh request.Repository.
type ApprovedRequestSource interface {
	FindApprovedByEmployee(ctx context.Context, employeeID string, window request.ApprovedWindow) ([]request.Request, error)
}

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, employeeID string, month, year int) (CalculationResponse, error)
	CreateRecord(ctx context.Context, actorID string, req CreateSalaryRecordRequest) (SalaryRecordResponse, error)
	GetRecordsByEmployee(ctx context.Context, employeeID string) ([]SalaryRecordResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeLookup
	requests  ApprovedRequestSource
	policy    string
	outbox    kafka.OutboxRepository
	metrics   *metrics.Collector
	sf        *singleflight.Group
	logger    *zap.Logger
}

type Options struct {
	PeriodPolicy string
	Outbox       kafka.OutboxRepository
	Metrics      *metrics.Collector
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeLookup,
	requests ApprovedRequestSource,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	policy := opts.PeriodPolicy
	if policy == "" {
		policy = config.SalaryPeriodApprovedWithin
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		requests:  requests,
		policy:    policy,
		outbox:    opts.Outbox,
		metrics:   opts.Metrics,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

const sharedComputeTimeout = 30 * time.Second

func (s *service) Calculate(ctx context.Context, employeeID string, month, year int) (CalculationResponse, error) {
	if err := validatePeriod(employeeID, month, year); err != nil {
		return CalculationResponse{}, err
	}

	key := fmt.Sprintf("%s:%d:%d", employeeID, month, year)
	ch := s.sf.DoChan(key, func() (interface{}, error) {
		// dipakai bersama beberapa pemanggil: tidak ikut batal bila pemanggil pertama batal
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedComputeTimeout)
		defer cancel()
		return s.compute(sharedCtx, employeeID, month, year)
	})

	select {
	case <-ctx.Done():
		return CalculationResponse{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return CalculationResponse{}, res.Err
		}
		if res.Shared {
			s.logger.Debug("salary calculation shared", zap.String("key", key))
		}
		return mapToCalculationResponse(employeeID, month, year, s.policy, res.Val.(Breakdown)), nil
	}
}

func (s *service) compute(ctx context.Context, employeeID string, month, year int) (Breakdown, error) {
	start := time.Now()

	base, err := s.employees.FindBaseSalary(ctx, employeeID)
	if err != nil {
		mapped := mapRepositoryError(err)
		outcome := "error"
		if mapped == salaryerrors.ErrEmployeeNotFound {
			outcome = "not_found"
		}
		s.metrics.RecordSalaryComputation(outcome, time.Since(start))
		s.logger.Warn("salary base lookup failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return Breakdown{}, mapped
	}

	approved, err := s.requests.FindApprovedByEmployee(ctx, employeeID, PeriodWindow(s.policy, month, year))
	if err != nil {
		s.metrics.RecordSalaryComputation("error", time.Since(start))
		s.logger.Error("salary approved requests lookup failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return Breakdown{}, err
	}

	b := Compute(base, approved)
	s.metrics.RecordSalaryComputation("success", time.Since(start))
	s.logger.Debug("salary computed",
		zap.String("employee_id", employeeID),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("approved_requests", len(approved)),
		zap.String("total_salary", b.TotalSalary.StringFixed(2)),
	)
	return b, nil
}

// CreateRecord selalu menghitung ulang di server; angka dari klien tidak dipakai.
func (s *service) CreateRecord(ctx context.Context, actorID string, req CreateSalaryRecordRequest) (SalaryRecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create salary record requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	if err := validatePeriod(req.EmployeeID, req.Month, req.Year); err != nil {
		return SalaryRecordResponse{}, err
	}
	var createdBy *uuid.UUID
	if actorID != "" {
		actorUUID, err := uuid.Parse(actorID)
		if err != nil {
			return SalaryRecordResponse{}, salaryerrors.ErrInvalidActorID
		}
		createdBy = &actorUUID
	}

	b, err := s.compute(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return SalaryRecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create salary record begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryRecordResponse{}, err
	}
	defer tx.Rollback()

	record := &SalaryRecord{
		ID:            uuid.New(),
		EmployeeID:    uuid.MustParse(req.EmployeeID),
		Month:         req.Month,
		Year:          req.Year,
		BaseSalary:    b.BaseSalary,
		Bonuses:       b.Bonuses,
		Deductions:    b.Deductions,
		OvertimePay:   b.OvertimePay,
		MealAllowance: b.MealAllowance,
		TotalSalary:   b.TotalSalary,
		PeriodPolicy:  s.policy,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.WithTx(tx).Create(ctx, record); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == salaryerrors.ErrSalaryRecordExists {
			s.logger.Warn("create salary record duplicate period",
				zap.String("employee_id", req.EmployeeID),
				zap.Int("month", req.Month),
				zap.Int("year", req.Year),
			)
		} else {
			s.logger.Error("create salary record persist failed", zap.Error(err))
		}
		return SalaryRecordResponse{}, mapped
	}

	if s.outbox != nil {
		event := events.SalaryRecordCreatedEvent{
			EventType:   events.SalaryRecordCreatedEventType,
			RequestID:   rid,
			RecordID:    record.ID.String(),
			EmployeeID:  req.EmployeeID,
			Month:       req.Month,
			Year:        req.Year,
			TotalSalary: record.TotalSalary.StringFixed(2),
			OccurredAt:  record.CreatedAt,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return SalaryRecordResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "salary_record",
			AggregateID:   record.ID.String(),
			EventType:     event.EventType,
			Topic:         events.SalaryRecordCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create salary record outbox persist failed",
				zap.String("record_id", record.ID.String()),
				zap.Error(err),
			)
			return SalaryRecordResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create salary record commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryRecordResponse{}, err
	}

	s.logger.Info("create salary record success",
		zap.String("request_id", rid),
		zap.String("record_id", record.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("total_salary", record.TotalSalary.StringFixed(2)),
	)
	return mapToRecordResponse(*record), nil
}

func (s *service) GetRecordsByEmployee(ctx context.Context, employeeID string) ([]SalaryRecordResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, salaryerrors.ErrInvalidEmployeeID
	}

	records, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list salary records failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	resp := make([]SalaryRecordResponse, len(records))
	for i, r := range records {
		resp[i] = mapToRecordResponse(r)
	}
	return resp, nil
}

func validatePeriod(employeeID string, month, year int) error {
	if _, err := uuid.Parse(employeeID); err != nil {
		return salaryerrors.ErrInvalidEmployeeID
	}
	if month < 1 || month > 12 {
		return salaryerrors.ErrInvalidMonth
	}
	if year < 1 {
		return salaryerrors.ErrInvalidYear
	}
	return nil
}

func mapToCalculationResponse(employeeID string, month, year int, policy string, b Breakdown) CalculationResponse {
	return CalculationResponse{
		EmployeeID:    employeeID,
		Month:         month,
		Year:          year,
		PeriodPolicy:  policy,
		BaseSalary:    b.BaseSalary.StringFixed(2),
		Bonuses:       b.Bonuses.StringFixed(2),
		Deductions:    b.Deductions.StringFixed(2),
		OvertimePay:   b.OvertimePay.StringFixed(2),
		MealAllowance: b.MealAllowance.StringFixed(2),
		TotalSalary:   b.TotalSalary.StringFixed(2),
	}
}

func mapToRecordResponse(r SalaryRecord) SalaryRecordResponse {
	resp := SalaryRecordResponse{
		ID: r.ID.String(),
		CalculationResponse: mapToCalculationResponse(r.EmployeeID.String(), r.Month, r.Year, r.PeriodPolicy, Breakdown{
			BaseSalary:    r.BaseSalary,
			Bonuses:       r.Bonuses,
			Deductions:    r.Deductions,
			OvertimePay:   r.OvertimePay,
			MealAllowance: r.MealAllowance,
			TotalSalary:   r.TotalSalary,
		}),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.CreatedBy != nil {
		v := r.CreatedBy.String()
		resp.CreatedBy = &v
	}
	return resp
}
