package report

import (
	"context"
	"time"

	reporterrors "go-hrms/internal/report/errors"
	"go-hrms/internal/request"
	"go-hrms/internal/salary"

	"go.uber.org/zap"
)

// RequestCounter dipenuhi oleh request.Repository.
type RequestCounter interface {
	CountByStatusAndTypeSince(ctx context.Context, since time.Time) ([]request.StatusTypeCount, error)
}

// SalaryRecordSource dipenuhi oleh salary.Repository.
type SalaryRecordSource interface {
	FindByPeriod(ctx context.Context, month, year int) ([]salary.SalaryRecord, error)
	FindByYear(ctx context.Context, year int) ([]salary.SalaryRecord, error)
}

type Service interface {
	Weekly(ctx context.Context) (WeeklyReport, error)
	Monthly(ctx context.Context, month, year int) (MonthlyReport, error)
	Annual(ctx context.Context, year int) (AnnualReport, error)
}

type service struct {
	requests RequestCounter
	records  SalaryRecordSource
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(requests RequestCounter, records SalaryRecordSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		requests: requests,
		records:  records,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Weekly(ctx context.Context) (WeeklyReport, error) {
	since := s.now().UTC().Add(-WeeklyWindow)
	rows, err := s.requests.CountByStatusAndTypeSince(ctx, since)
	if err != nil {
		s.logger.Error("weekly report query failed", zap.Error(err))
		return WeeklyReport{}, err
	}
	return aggregateWeekly(since, rows), nil
}

func (s *service) Monthly(ctx context.Context, month, year int) (MonthlyReport, error) {
	if month < 1 || month > 12 {
		return MonthlyReport{}, reporterrors.ErrInvalidMonth
	}
	if year < 1 {
		return MonthlyReport{}, reporterrors.ErrInvalidYear
	}

	records, err := s.records.FindByPeriod(ctx, month, year)
	if err != nil {
		s.logger.Error("monthly report query failed",
			zap.Int("month", month),
			zap.Int("year", year),
			zap.Error(err),
		)
		return MonthlyReport{}, err
	}
	return aggregateMonthly(month, year, records), nil
}

func (s *service) Annual(ctx context.Context, year int) (AnnualReport, error) {
	if year < 1 {
		return AnnualReport{}, reporterrors.ErrInvalidYear
	}

	records, err := s.records.FindByYear(ctx, year)
	if err != nil {
		s.logger.Error("annual report query failed", zap.Int("year", year), zap.Error(err))
		return AnnualReport{}, err
	}
	return aggregateAnnual(year, records), nil
}
