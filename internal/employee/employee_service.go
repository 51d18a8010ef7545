package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

const employeeOptionsTTL = 1 * time.Hour

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, int64, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("department_id", req.DepartmentID),
		zap.String("email", req.Email),
	)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}
	baseSalary, err := validateBaseSalary(req.BaseSalary)
	if err != nil {
		s.logger.Warn("create employee invalid base_salary", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if req.DepartmentID != "" {
		if err := s.ensureDepartment(ctx, qtx, req.DepartmentID); err != nil {
			return EmployeeResponse{}, err
		}
	}

	code := strings.TrimSpace(req.EmployeeCode)
	if code == "" {
		nextVal, err := s.counter.GetNextValue(ctx, counter.TypeEmployeeCode)
		if err != nil {
			s.logger.Error("create employee generate code failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		code = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:           uuid.New(),
		EmployeeCode: code,
		UserID:       uuidPtr(req.UserID),
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: uuidPtr(req.DepartmentID),
		Position:     req.Position,
		HireDate:     hireDate,
		BaseSalary:   baseSalary,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:    events.EmployeeCreatedEventType,
			RequestID:    rid,
			EmployeeID:   empl.ID.String(),
			EmployeeCode: empl.EmployeeCode,
			DepartmentID: req.DepartmentID,
			OccurredAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", empl.EmployeeCode),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, int64, error) {
	s.logger.Debug("get all employees requested", zap.String("department_id", filter.DepartmentID))

	f := Filter{
		DepartmentID: filter.DepartmentID,
		Query:        filter.Query,
	}
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		f.Limit = filter.PageSize
		f.Offset = response.Offset(page, filter.PageSize)
	}

	empls, total, err := s.repo.FindAll(ctx, f)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	return mapToListResponse(empls), total, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight saat banyak form dibuka bersamaan
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		// 3. Simpan ke Redis
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, employeeOptionsTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.DepartmentID != nil && *req.DepartmentID != "" {
		if err := s.ensureDepartment(ctx, qtx, *req.DepartmentID); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := req.apply(empl); err != nil {
		s.logger.Warn("update employee validation failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update employee success", zap.String("request_id", rid), zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) ensureDepartment(ctx context.Context, qtx Repository, departmentID string) error {
	ok, err := qtx.DepartmentExists(ctx, departmentID)
	if err != nil {
		s.logger.Error("department lookup failed", zap.String("department_id", departmentID), zap.Error(err))
		return err
	}
	if !ok {
		s.logger.Warn("department not found", zap.String("department_id", departmentID))
		return employeeerrors.ErrDepartmentNotFound
	}
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

// apply hanya menyentuh field yang dikirim.
func (req UpdateEmployeeRequest) apply(empl *Employee) error {
	if req.FullName != nil {
		empl.FullName = *req.FullName
	}
	if req.Email != nil {
		empl.Email = *req.Email
	}
	if req.Phone != nil {
		empl.Phone = *req.Phone
	}
	if req.DepartmentID != nil {
		empl.DepartmentID = uuidPtr(*req.DepartmentID)
		empl.Department = nil
	}
	if req.Position != nil {
		empl.Position = *req.Position
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employeeerrors.ErrInvalidHireDate
		}
		empl.HireDate = hireDate
	}
	if req.BaseSalary != nil {
		base, err := validateBaseSalary(req.BaseSalary)
		if err != nil {
			return err
		}
		empl.BaseSalary = base
	}
	if req.Documents != nil {
		empl.Documents = append([]string(nil), (*req.Documents)...)
	}
	return nil
}

func validateBaseSalary(v *decimal.Decimal) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, employeeerrors.ErrBaseSalaryRequired
	}
	if v.IsNegative() {
		return decimal.Zero, employeeerrors.ErrNegativeBaseSalary
	}
	return v.Round(2), nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID.String(),
		EmployeeCode: empl.EmployeeCode,
		UserID:       uuidToString(empl.UserID),
		FullName:     empl.FullName,
		Email:        empl.Email,
		Phone:        empl.Phone,
		DepartmentID: uuidToString(empl.DepartmentID),
		Position:     empl.Position,
		BaseSalary:   empl.BaseSalary.StringFixed(2),
		Documents:    empl.Documents,
	}
	if !empl.HireDate.IsZero() {
		resp.HireDate = empl.HireDate.Format("2006-01-02")
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
