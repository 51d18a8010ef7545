package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/metrics"
	requesterrors "go-hrms/internal/request/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RoleEmployee hanya boleh melihat pengajuannya sendiri.
const RoleEmployee = "employee"

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateRequestRequest) (RequestResponse, error)
	GetAll(ctx context.Context, actorID, role string, filter ListRequestsFilter) ([]RequestResponse, int64, error)
	GetByID(ctx context.Context, actorID, role, id string) (RequestResponse, error)
	ListPendingForRole(ctx context.Context, role string) ([]RequestResponse, error)
	Approve(ctx context.Context, actorID, role, id string) (RequestResponse, error)
	Reject(ctx context.Context, actorID, role, id, reason string) (RequestResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	chain   ApprovalChain
	outbox  kafka.OutboxRepository
	metrics *metrics.Collector
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, chain ApprovalChain, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, chain, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	chain ApprovalChain,
	outboxRepo kafka.OutboxRepository,
	collector *metrics.Collector,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		chain:   chain,
		outbox:  outboxRepo,
		metrics: collector,
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateRequestRequest) (RequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create request requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("request_type", req.RequestType),
	)

	employeeUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidActorID
	}

	r, err := buildRequest(employeeUUID, req)
	if err != nil {
		s.logger.Warn("create request validation failed",
			zap.String("request_id", rid),
			zap.String("request_type", req.RequestType),
			zap.Error(err),
		)
		return RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create request begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, actorID)
	if err != nil {
		s.logger.Error("create request employee check failed", zap.Error(err))
		return RequestResponse{}, err
	}
	if !exists {
		s.logger.Warn("create request employee not found", zap.String("employee_id", actorID))
		return RequestResponse{}, requesterrors.ErrEmployeeNotFound
	}

	if err := qtx.Create(ctx, r); err != nil {
		s.logger.Error("create request persist failed", zap.String("request_id", rid), zap.Error(err))
		return RequestResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create request commit failed", zap.String("request_id", rid), zap.Error(err))
		return RequestResponse{}, err
	}

	s.metrics.RecordRequestCreated(r.RequestType)
	s.logger.Info("create request success",
		zap.String("request_id", rid),
		zap.String("entity_id", r.ID.String()),
		zap.String("employee_id", actorID),
		zap.String("request_type", r.RequestType),
	)

	return mapToResponse(*r), nil
}

func (s *service) GetAll(ctx context.Context, actorID, role string, filter ListRequestsFilter) ([]RequestResponse, int64, error) {
	f := Filter{
		EmployeeID:  filter.EmployeeID,
		Status:      filter.Status,
		RequestType: filter.RequestType,
	}
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		f.Limit = filter.PageSize
		f.Offset = response.Offset(page, filter.PageSize)
	}
	if role == RoleEmployee {
		if _, err := uuid.Parse(actorID); err != nil {
			return nil, 0, requesterrors.ErrInvalidActorID
		}
		f.EmployeeID = actorID
	}

	reqs, total, err := s.repo.FindAll(ctx, f)
	if err != nil {
		s.logger.Error("list requests failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(reqs), total, nil
}

// GetByID: employee hanya bisa membaca pengajuannya sendiri, milik orang
// lain diperlakukan sebagai not found.
func (s *service) GetByID(ctx context.Context, actorID, role, id string) (RequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidRequestID
	}

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RequestResponse{}, mapRepositoryError(err)
	}
	if role == RoleEmployee && r.EmployeeID.String() != actorID {
		s.logger.Warn("request read outside own scope",
			zap.String("entity_id", id),
			zap.String("actor_id", actorID),
		)
		return RequestResponse{}, requesterrors.ErrRequestNotFound
	}

	steps, err := s.repo.FindApprovalSteps(ctx, id)
	if err != nil {
		s.logger.Error("get request history failed", zap.String("entity_id", id), zap.Error(err))
		return RequestResponse{}, err
	}
	r.Approvals = steps

	return mapToResponse(*r), nil
}

func (s *service) ListPendingForRole(ctx context.Context, role string) ([]RequestResponse, error) {
	level, ok := s.chain.LevelOf(role)
	if !ok {
		return []RequestResponse{}, nil
	}

	reqs, err := s.repo.FindPendingByLevel(ctx, level)
	if err != nil {
		s.logger.Error("list pending requests failed",
			zap.String("role", role),
			zap.Int("level", level),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(reqs), nil
}

func (s *service) Approve(ctx context.Context, actorID, role, id string) (RequestResponse, error) {
	return s.decide(ctx, actorID, role, id, nil)
}

func (s *service) Reject(ctx context.Context, actorID, role, id, reason string) (RequestResponse, error) {
	return s.decide(ctx, actorID, role, id, &reason)
}

// decide menjalankan satu langkah approval (reason == nil) atau penolakan
// dalam satu transaksi. Penulisan dijaga compare-and-swap sehingga dua
// approver yang membaca state yang sama tidak bisa sama-sama berhasil.
func (s *service) decide(ctx context.Context, actorID, role, id string, reason *string) (RequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	op := ActionApprove
	if reason != nil {
		op = ActionReject
	}
	s.logger.Debug("decide request requested",
		zap.String("request_id", rid),
		zap.String("entity_id", id),
		zap.String("actor_id", actorID),
		zap.String("role", role),
		zap.String("operation", op),
	)

	if _, err := uuid.Parse(id); err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidRequestID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide request begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := qtx.FindByID(ctx, id)
	if err != nil {
		return RequestResponse{}, mapRepositoryError(err)
	}

	expectedLevel, expectedVersion := r.CurrentApproverLevel, r.Version
	now := s.now().UTC()

	action := ActionReject
	if reason == nil {
		action, err = s.chain.Advance(r, role, now)
	} else {
		err = s.chain.Reject(r, role, *reason)
	}
	if err != nil {
		s.metrics.RecordTransition(op, "denied")
		s.logger.Warn("decide request rejected by workflow",
			zap.String("entity_id", id),
			zap.String("role", role),
			zap.String("status", r.Status),
			zap.Int("current_level", expectedLevel),
			zap.Error(err),
		)
		return RequestResponse{}, err
	}
	if r.IsTerminal() {
		r.DecidedBy = &actorUUID
	}

	swapped, err := qtx.CompareAndSwapState(ctx, r, expectedLevel, expectedVersion)
	if err != nil {
		s.logger.Error("decide request persist failed", zap.String("entity_id", id), zap.Error(err))
		return RequestResponse{}, err
	}
	if !swapped {
		s.metrics.RecordTransition(op, "conflict")
		s.logger.Warn("decide request lost concurrent update",
			zap.String("entity_id", id),
			zap.Int("expected_level", expectedLevel),
			zap.Int("expected_version", expectedVersion),
		)
		return RequestResponse{}, requesterrors.ErrConcurrentUpdate
	}
	r.Version = expectedVersion + 1
	r.UpdatedAt = now

	step := &ApprovalStep{
		ID:        uuid.New(),
		RequestID: r.ID,
		Level:     expectedLevel,
		Role:      role,
		Action:    action,
		ActorID:   actorUUID,
		Reason:    r.RejectionReason,
		CreatedAt: now,
	}
	if err := qtx.CreateApprovalStep(ctx, step); err != nil {
		s.logger.Error("decide request history persist failed", zap.String("entity_id", id), zap.Error(err))
		return RequestResponse{}, err
	}

	if r.IsTerminal() && s.outbox != nil {
		if err := s.queueDecided(ctx, tx, rid, *r, role, now); err != nil {
			s.logger.Error("decide request outbox persist failed", zap.String("entity_id", id), zap.Error(err))
			return RequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide request commit failed", zap.String("request_id", rid), zap.Error(err))
		return RequestResponse{}, err
	}

	s.metrics.RecordTransition(action, "success")
	s.logger.Info("decide request success",
		zap.String("request_id", rid),
		zap.String("entity_id", id),
		zap.String("action", action),
		zap.String("status", r.Status),
		zap.Int("level", r.CurrentApproverLevel),
	)

	return mapToResponse(*r), nil
}

func (s *service) queueDecided(ctx context.Context, tx *sql.Tx, rid string, r Request, role string, now time.Time) error {
	event := events.RequestDecidedEvent{
		EventType:       events.RequestDecidedEventType,
		RequestID:       rid,
		EntityID:        r.ID.String(),
		EmployeeID:      r.EmployeeID.String(),
		RequestType:     r.RequestType,
		Status:          r.Status,
		Amount:          formatAmount(r.Amount),
		RejectionReason: r.RejectionReason,
		DecidedBy:       r.DecidedBy.String(),
		DecidedRole:     role,
		OccurredAt:      now,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "request",
		AggregateID:   r.ID.String(),
		EventType:     event.EventType,
		Topic:         events.RequestDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func buildRequest(employeeID uuid.UUID, req CreateRequestRequest) (*Request, error) {
	if !IsValidType(req.RequestType) {
		return nil, requesterrors.ErrInvalidRequestType
	}

	var amount *decimal.Decimal
	if RequiresAmount(req.RequestType) {
		if req.Amount == nil {
			return nil, requesterrors.ErrAmountRequired
		}
		if req.Amount.IsNegative() {
			return nil, requesterrors.ErrNegativeAmount
		}
		v := req.Amount.Round(2)
		amount = &v
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, requesterrors.ErrInvalidDateRange
	}

	return &Request{
		ID:                   uuid.New(),
		EmployeeID:           employeeID,
		RequestType:          req.RequestType,
		Amount:               amount,
		Description:          strings.TrimSpace(req.Description),
		StartDate:            startDate,
		EndDate:              endDate,
		Status:               StatusPending,
		CurrentApproverLevel: 1,
		Version:              1,
	}, nil
}

func parseOptionalDate(v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, requesterrors.ErrInvalidDateFormat
	}
	return &t, nil
}

func formatAmount(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	v := d.StringFixed(2)
	return &v
}

func mapToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:              r.ID.String(),
		EmployeeID:      r.EmployeeID.String(),
		RequestType:     r.RequestType,
		Amount:          formatAmount(r.Amount),
		Description:     r.Description,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
	if r.Status == StatusPending {
		level := r.CurrentApproverLevel
		resp.CurrentApproverLevel = &level
	}
	if r.StartDate != nil {
		v := r.StartDate.Format("2006-01-02")
		resp.StartDate = &v
	}
	if r.EndDate != nil {
		v := r.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	if r.DecidedBy != nil {
		v := r.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if r.ApprovedAt != nil {
		v := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	for _, step := range r.Approvals {
		resp.History = append(resp.History, ApprovalStepResponse{
			Level:     step.Level,
			Role:      step.Role,
			Action:    step.Action,
			ActorID:   step.ActorID.String(),
			Reason:    step.Reason,
			CreatedAt: step.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}

func mapToListResponse(reqs []Request) []RequestResponse {
	resp := make([]RequestResponse, len(reqs))
	for i, r := range reqs {
		resp[i] = mapToResponse(r)
	}
	return resp
}
