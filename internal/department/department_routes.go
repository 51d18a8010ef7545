package department

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes: daftar dan detail terbuka untuk semua user yang login,
// perubahan data lewat rbac "department".
func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	guard := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, "department", action)
	}

	r.GET("/departments", h.GetAll)
	r.GET("/departments/:id", h.GetById)
	r.POST("/departments", guard("create"), h.Create)
	r.PUT("/departments/:id", guard("update"), h.Update)
	r.DELETE("/departments/:id", guard("delete"), h.Delete)
}
