package notification

import (
	"context"
	"strings"
	"time"

	"go-hrms/internal/metrics"
	notificationerrors "go-hrms/internal/notification/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, in CreateNotificationInput) (NotificationResponse, error)
	GetAll(ctx context.Context, employeeID string, filter ListNotificationsFilter) ([]NotificationResponse, int64, error)
	MarkRead(ctx context.Context, employeeID, id string) (NotificationResponse, error)
	MarkAllRead(ctx context.Context, employeeID string) (int64, error)
}

type service struct {
	repo    Repository
	metrics *metrics.Collector
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(repo Repository, collector *metrics.Collector, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{
		repo:    repo,
		metrics: collector,
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, in CreateNotificationInput) (NotificationResponse, error) {
	employeeID, err := uuid.Parse(in.EmployeeID)
	if err != nil || strings.TrimSpace(in.Kind) == "" || strings.TrimSpace(in.SourceID) == "" {
		s.logger.Warn("invalid notification input",
			zap.String("employee_id", in.EmployeeID),
			zap.String("kind", in.Kind),
			zap.String("source_id", in.SourceID),
		)
		return NotificationResponse{}, notificationerrors.ErrInvalidNotification
	}

	n := &Notification{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Kind:       in.Kind,
		SourceID:   in.SourceID,
		Title:      in.Title,
		Message:    in.Message,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return NotificationResponse{}, mapRepositoryError(err)
	}

	s.metrics.RecordNotificationStored()
	s.logger.Info("notification stored",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("notification_id", n.ID.String()),
		zap.String("employee_id", in.EmployeeID),
		zap.String("kind", in.Kind),
	)
	return mapToResponse(*n), nil
}

func (s *service) GetAll(ctx context.Context, employeeID string, filter ListNotificationsFilter) ([]NotificationResponse, int64, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, 0, notificationerrors.ErrEmployeeRequired
	}

	repoFilter := Filter{EmployeeID: employeeID, UnreadOnly: filter.UnreadOnly}
	if filter.PageSize > 0 {
		repoFilter.Offset = response.Offset(filter.Page, filter.PageSize)
		repoFilter.Limit = filter.PageSize
	}

	list, total, err := s.repo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]NotificationResponse, len(list))
	for i, n := range list {
		out[i] = mapToResponse(n)
	}
	return out, total, nil
}

func (s *service) MarkRead(ctx context.Context, employeeID, id string) (NotificationResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return NotificationResponse{}, notificationerrors.ErrEmployeeRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return NotificationResponse{}, notificationerrors.ErrInvalidNotificationID
	}

	n, err := s.repo.FindByID(ctx, id, employeeID)
	if err != nil {
		return NotificationResponse{}, mapRepositoryError(err)
	}
	if n.IsRead {
		return mapToResponse(*n), nil
	}

	at := s.now().UTC()
	if err := s.repo.MarkRead(ctx, id, employeeID, at); err != nil {
		return NotificationResponse{}, mapRepositoryError(err)
	}
	n.IsRead = true
	n.ReadAt = &at
	return mapToResponse(*n), nil
}

func (s *service) MarkAllRead(ctx context.Context, employeeID string) (int64, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return 0, notificationerrors.ErrEmployeeRequired
	}
	return s.repo.MarkAllRead(ctx, employeeID, s.now().UTC())
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:         n.ID.String(),
		EmployeeID: n.EmployeeID.String(),
		Kind:       n.Kind,
		Title:      n.Title,
		Message:    n.Message,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		readAt := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &readAt
	}
	return resp
}
