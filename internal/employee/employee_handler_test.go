package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn     func(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, int64, error)
	GetOptionsFn func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, int64, error) {
	return f.GetAllFn(ctx, filter)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type apiMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  *apiMeta        `json:"meta"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "John Doe", req.FullName)
				assert.Equal(t, "4500.5", req.BaseSalary.String())
				return employee.EmployeeResponse{
					ID:           uuid.New().String(),
					EmployeeCode: "EMP-000001",
					FullName:     req.FullName,
					Email:        req.Email,
					BaseSalary:   req.BaseSalary.StringFixed(2),
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		body := `{"full_name":"John Doe","email":"john@example.com","hire_date":"2026-01-01","base_salary":"4500.50"}`
		c, w := newTestContext(http.MethodPost, "/employees", body)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"base_salary":"4500.50"`)
	})

	t.Run("validation error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		c, w := newTestContext(http.MethodPost, "/employees", `{}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("database connection failed")
			},
		}
		h := employee.NewHandler(svc)
		body := `{"full_name":"HR","email":"hr@company.com","hire_date":"2026-01-02","base_salary":"1000"}`
		c, w := newTestContext(http.MethodPost, "/employees", body)

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, apperror.CodeInternalError, env.Error.Code)
		assert.NotContains(t, w.Body.String(), "database connection failed")
	})

	t.Run("duplicate employee code returns conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeCodeAlreadyExists
			},
		}
		h := employee.NewHandler(svc)
		body := `{"employee_code":"EMP-900","full_name":"John Doe","email":"john2@example.com","hire_date":"2026-01-01","base_salary":"1"}`
		c, w := newTestContext(http.MethodPost, "/employees", body)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
		assert.Contains(t, w.Body.String(), "Employee code already exists")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("passes filter and pagination", func(t *testing.T) {
		deptID := uuid.New().String()
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, int64, error) {
				assert.Equal(t, deptID, filter.DepartmentID)
				assert.Equal(t, "budi", filter.Query)
				assert.Equal(t, 2, filter.Page)
				assert.Equal(t, 5, filter.PageSize)
				return []employee.EmployeeResponse{{FullName: "Budi"}}, 6, nil
			},
		}
		h := employee.NewHandler(svc)
		c, w := newTestContext(http.MethodGet, "/employees?department_id="+deptID+"&q=budi&page=2&page_size=5", "")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		if assert.NotNil(t, env.Meta) {
			assert.Equal(t, int64(6), env.Meta.Total)
			assert.Equal(t, 2, env.Meta.Page)
			assert.Equal(t, 5, env.Meta.PageSize)
		}
	})

	t.Run("invalid department id", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		c, w := newTestContext(http.MethodGet, "/employees?department_id=abc", "")

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_GetOptions(t *testing.T) {
	svc := &fakeEmployeeService{
		GetOptionsFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{{ID: "1", FullName: "Caca"}}, nil
		},
	}
	h := employee.NewHandler(svc)
	c, w := newTestContext(http.MethodGet, "/employees/options", "")

	h.GetOptions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Caca")
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)
		id := uuid.New().String()
		c, w := newTestContext(http.MethodGet, "/employees/"+id, "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, apperror.CodeNotFound, env.Error.Code)
	})

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, got string) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, got)
				return employee.EmployeeResponse{ID: got, FullName: "Eka"}, nil
			},
		}
		h := employee.NewHandler(svc)
		c, w := newTestContext(http.MethodGet, "/employees/"+id, "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.GetById(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Eka")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("partial body only sets given fields", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, got string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, got)
				assert.Nil(t, req.FullName)
				assert.Nil(t, req.BaseSalary)
				if assert.NotNil(t, req.Position) {
					assert.Equal(t, "Supervisor", *req.Position)
				}
				return employee.EmployeeResponse{ID: got, Position: *req.Position}, nil
			},
		}
		h := employee.NewHandler(svc)
		c, w := newTestContext(http.MethodPut, "/employees/"+id, `{"position":"Supervisor"}`)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Supervisor")
	})

	t.Run("invalid email", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		c, w := newTestContext(http.MethodPut, "/employees/x", `{"email":"not-an-email"}`)
		c.Params = gin.Params{{Key: "id", Value: "x"}}

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, got string) error {
				assert.Equal(t, id, got)
				return nil
			},
		}
		h := employee.NewHandler(svc)
		c, w := newTestContext(http.MethodDelete, "/employees/"+id, "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)
		c, w := newTestContext(http.MethodDelete, "/employees/x", "")
		c.Params = gin.Params{{Key: "id", Value: "x"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
