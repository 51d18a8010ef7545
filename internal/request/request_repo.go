package request

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/scope"

	"gorm.io/gorm"
)

type Filter struct {
	EmployeeID  string
	Status      string
	RequestType string
	Offset      int
	Limit       int
}

// ApprovedWindow membatasi approved_at ke [From, To). Nil berarti tanpa batas.
type ApprovedWindow struct {
	From *time.Time
	To   *time.Time
}

type StatusTypeCount struct {
	Status      string
	RequestType string
	Total       int64
}

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id string) (*Request, error)
	FindAll(ctx context.Context, filter Filter) ([]Request, int64, error)
	FindPendingByLevel(ctx context.Context, level int) ([]Request, error)
	CompareAndSwapState(ctx context.Context, r *Request, expectedLevel, expectedVersion int) (bool, error)
	CreateApprovalStep(ctx context.Context, step *ApprovalStep) error
	FindApprovalSteps(ctx context.Context, requestID string) ([]ApprovalStep, error)
	FindApprovedByEmployee(ctx context.Context, employeeID string, window ApprovedWindow) ([]Request, error)
	CountByStatusAndTypeSince(ctx context.Context, since time.Time) ([]StatusTypeCount, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
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

// conn mengarahkan query gorm ke *sql.Tx milik service bila ada,
// sehingga perubahan request dan outbox ikut commit/rollback bersama.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.conn(ctx).Omit("Approvals").Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.conn(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Request, int64, error) {
	q := r.conn(ctx).Model(&Request{})
	if filter.EmployeeID != "" {
		q = q.Scopes(scope.Employee(filter.EmployeeID))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.RequestType != "" {
		q = q.Where("request_type = ?", filter.RequestType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Scopes(scope.Paginate(filter.Offset, filter.Limit))

	var reqs []Request
	err := q.Order("created_at DESC").Find(&reqs).Error
	return reqs, total, err
}

func (r *repository) FindPendingByLevel(ctx context.Context, level int) ([]Request, error) {
	var reqs []Request
	err := r.conn(ctx).
		Where("status = ?", StatusPending).
		Where("current_approver_level = ?", level).
		Order("created_at ASC").
		Find(&reqs).Error
	return reqs, err
}

// CompareAndSwapState menulis hasil transisi hanya jika baris di DB masih
// pending di level dan versi yang sama dengan saat dibaca. false berarti
// approver lain sudah lebih dulu mengubah request.
func (r *repository) CompareAndSwapState(ctx context.Context, req *Request, expectedLevel, expectedVersion int) (bool, error) {
	res := r.conn(ctx).
		Model(&Request{}).
		Where("id = ?", req.ID).
		Where("status = ?", StatusPending).
		Where("current_approver_level = ?", expectedLevel).
		Where("version = ?", expectedVersion).
		Updates(map[string]any{
			"status":                 req.Status,
			"current_approver_level": req.CurrentApproverLevel,
			"rejection_reason":       req.RejectionReason,
			"decided_by":             req.DecidedBy,
			"approved_at":            req.ApprovedAt,
			"version":                gorm.Expr("version + 1"),
			"updated_at":             time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) CreateApprovalStep(ctx context.Context, step *ApprovalStep) error {
	return r.conn(ctx).Create(step).Error
}

func (r *repository) FindApprovalSteps(ctx context.Context, requestID string) ([]ApprovalStep, error) {
	var steps []ApprovalStep
	err := r.conn(ctx).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&steps).Error
	return steps, err
}

func (r *repository) FindApprovedByEmployee(ctx context.Context, employeeID string, window ApprovedWindow) ([]Request, error) {
	q := r.conn(ctx).
		Scopes(scope.Employee(employeeID)).
		Where("status = ?", StatusApproved)
	if window.From != nil {
		q = q.Where("approved_at >= ?", *window.From)
	}
	if window.To != nil {
		q = q.Where("approved_at < ?", *window.To)
	}

	var reqs []Request
	err := q.Order("approved_at ASC").Find(&reqs).Error
	return reqs, err
}

func (r *repository) CountByStatusAndTypeSince(ctx context.Context, since time.Time) ([]StatusTypeCount, error) {
	var rows []StatusTypeCount
	err := r.conn(ctx).
		Model(&Request{}).
		Select("status, request_type, COUNT(*) AS total").
		Where("created_at >= ?", since).
		Group("status, request_type").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
