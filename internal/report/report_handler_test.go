package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/report"
	reporterrors "go-hrms/internal/report/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeReportService struct {
	WeeklyFn  func(ctx context.Context) (report.WeeklyReport, error)
	MonthlyFn func(ctx context.Context, month, year int) (report.MonthlyReport, error)
	AnnualFn  func(ctx context.Context, year int) (report.AnnualReport, error)
}

func (f *fakeReportService) Weekly(ctx context.Context) (report.WeeklyReport, error) {
	return f.WeeklyFn(ctx)
}
func (f *fakeReportService) Monthly(ctx context.Context, month, year int) (report.MonthlyReport, error) {
	return f.MonthlyFn(ctx, month, year)
}
func (f *fakeReportService) Annual(ctx context.Context, year int) (report.AnnualReport, error) {
	return f.AnnualFn(ctx, year)
}

type allowRole string

func (a allowRole) Enforce(role, resource, action string) (bool, error) {
	return role == string(a), nil
}

func setupRouter(svc report.Service, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	})
	report.RegisterRoutes(r.Group(""), report.NewHandler(svc), allowRole("hr_manager"))
	return r
}

func TestReportHandler_Monthly(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeReportService{
			MonthlyFn: func(ctx context.Context, month, year int) (report.MonthlyReport, error) {
				assert.Equal(t, 3, month)
				assert.Equal(t, 2025, year)
				return report.MonthlyReport{Period: "monthly", Month: month, Year: year, TotalSalaries: "10.00"}, nil
			},
		}
		w := httptest.NewRecorder()
		setupRouter(svc, "hr_manager").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/monthly?month=3&year=2025", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_salaries":"10.00"`)
	})

	t.Run("missing year", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(&fakeReportService{}, "hr_manager").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/monthly?month=3", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid month from service", func(t *testing.T) {
		svc := &fakeReportService{
			MonthlyFn: func(ctx context.Context, month, year int) (report.MonthlyReport, error) {
				return report.MonthlyReport{}, reporterrors.ErrInvalidMonth
			},
		}
		w := httptest.NewRecorder()
		setupRouter(svc, "hr_manager").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/monthly?month=14&year=2025", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "month must be between 1 and 12")
	})
}

func TestReportHandler_Weekly_Forbidden(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter(&fakeReportService{}, "supervisor").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/weekly", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReportHandler_Annual(t *testing.T) {
	svc := &fakeReportService{
		AnnualFn: func(ctx context.Context, year int) (report.AnnualReport, error) {
			return report.AnnualReport{Period: "annual", Year: year, TotalSalaries: "0.00"}, nil
		},
	}
	w := httptest.NewRecorder()
	setupRouter(svc, "hr_manager").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/annual?year=2024", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"year":2024`)
}
