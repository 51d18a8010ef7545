package report

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	reports := r.Group("/reports")
	{
		reports.GET("/weekly", middleware.RBACAuthorize(rbacService, "report", "weekly"), handler.Weekly)
		reports.GET("/monthly", middleware.RBACAuthorize(rbacService, "report", "monthly"), handler.Monthly)
		reports.GET("/annual", middleware.RBACAuthorize(rbacService, "report", "annual"), handler.Annual)
	}
}
