package rbac_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBACService struct {
	EnforceFn     func(role, resource, action string) (bool, error)
	PermissionsFn func(role string) []rbac.Permission
}

func (f *fakeRBACService) Enforce(role, resource, action string) (bool, error) {
	return f.EnforceFn(role, resource, action)
}

func (f *fakeRBACService) PermissionsForRole(role string) []rbac.Permission {
	return f.PermissionsFn(role)
}

func setupRouter(svc rbac.Service, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	})
	rbac.RegisterRoutes(r.Group(""), rbac.NewHandler(svc))
	return r
}

func TestRBACHandler_Enforce(t *testing.T) {
	t.Run("allowed for caller role", func(t *testing.T) {
		svc := &fakeRBACService{
			EnforceFn: func(role, resource, action string) (bool, error) {
				assert.Equal(t, "hr_manager", role)
				return resource == "employee" && action == "create", nil
			},
		}
		r := setupRouter(svc, "hr_manager")

		body, _ := json.Marshal(map[string]string{"resource": "employee", "action": "create"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("missing fields", func(t *testing.T) {
		r := setupRouter(&fakeRBACService{}, "hr_manager")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"employee"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		svc := &fakeRBACService{
			EnforceFn: func(role, resource, action string) (bool, error) {
				return false, errors.New("model broken")
			},
		}
		r := setupRouter(svc, "hr_manager")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"a","action":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "model broken")
	})
}

func TestRBACHandler_MyPermissions(t *testing.T) {
	svc := &fakeRBACService{
		PermissionsFn: func(role string) []rbac.Permission {
			return []rbac.Permission{{Resource: "report", Action: "weekly"}}
		},
	}
	r := setupRouter(svc, "factory_manager")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"factory_manager"`)
	assert.Contains(t, w.Body.String(), `"weekly"`)
}
