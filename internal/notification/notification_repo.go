package notification

import (
	"context"
	"time"

	"go-hrms/internal/shared/scope"

	"gorm.io/gorm"
)

type Filter struct {
	EmployeeID string
	UnreadOnly bool
	Offset     int
	Limit      int
}

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindAll(ctx context.Context, filter Filter) ([]Notification, int64, error)
	FindByID(ctx context.Context, id, employeeID string) (*Notification, error)
	MarkRead(ctx context.Context, id, employeeID string, at time.Time) error
	MarkAllRead(ctx context.Context, employeeID string, at time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Notification, int64, error) {
	query := r.db.WithContext(ctx).Model(&Notification{}).Scopes(scope.Employee(filter.EmployeeID))
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []Notification
	err := query.
		Scopes(scope.Paginate(filter.Offset, filter.Limit)).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *repository) FindByID(ctx context.Context, id, employeeID string) (*Notification, error) {
	var n Notification
	err := r.db.WithContext(ctx).
		Where("id = ? AND employee_id = ?", id, employeeID).
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) MarkRead(ctx context.Context, id, employeeID string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND employee_id = ?", id, employeeID).
		Updates(map[string]any{"is_read": true, "read_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) MarkAllRead(ctx context.Context, employeeID string, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("employee_id = ? AND is_read = ?", employeeID, false).
		Updates(map[string]any{"is_read": true, "read_at": at})
	return res.RowsAffected, res.Error
}
