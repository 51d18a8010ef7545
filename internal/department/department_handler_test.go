package department_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/department"
	departmenterrors "go-hrms/internal/department/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDepartmentService struct {
	CreateFn  func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetAllFn  func(ctx context.Context) ([]department.DepartmentResponse, error)
	GetByIDFn func(ctx context.Context, id string) (department.DepartmentResponse, error)
	UpdateFn  func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(h *department.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/departments", h.Create)
	r.GET("/departments", h.GetAll)
	r.GET("/departments/:id", h.GetById)
	r.PUT("/departments/:id", h.Update)
	r.DELETE("/departments/:id", h.Delete)
	return r
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: uuid.New().String(), Name: req.Name}, nil
			},
		}
		r := setupRouter(department.NewHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"HR"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"HR"`)
	})

	t.Run("missing name", func(t *testing.T) {
		r := setupRouter(department.NewHandler(&fakeDepartmentService{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetAllFn: func(ctx context.Context) ([]department.DepartmentResponse, error) {
				return []department.DepartmentResponse{{ID: "1", Name: "HR"}, {ID: "2", Name: "IT"}}, nil
			},
		}
		r := setupRouter(department.NewHandler(svc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "IT")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetAllFn: func(ctx context.Context) ([]department.DepartmentResponse, error) {
				return nil, errors.New("boom")
			},
		}
		r := setupRouter(department.NewHandler(svc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDepartmentHandler_GetByID(t *testing.T) {
	svc := &fakeDepartmentService{
		GetByIDFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
			return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		},
	}
	r := setupRouter(department.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments/"+uuid.New().String(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Department not found")
}

func TestDepartmentHandler_Update(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeDepartmentService{
		UpdateFn: func(ctx context.Context, got string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
			assert.Equal(t, id, got)
			require.NotNil(t, req.Name)
			assert.Nil(t, req.Description)
			return department.DepartmentResponse{ID: got, Name: *req.Name}, nil
		},
	}
	r := setupRouter(department.NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/departments/"+id, strings.NewReader(`{"name":"People"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "People")
}

func TestDepartmentHandler_Delete(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeDepartmentService{
		DeleteFn: func(ctx context.Context, got string) error {
			assert.Equal(t, id, got)
			return nil
		},
	}
	r := setupRouter(department.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/departments/"+id, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}
