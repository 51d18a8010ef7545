package employee

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	// limit per user: baca longgar, tulis ketat, hapus paling ketat
	readLimit := middleware.RateLimitByUser(3, 10)
	optionsLimit := middleware.RateLimitByUser(5, 20)

	can := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, "employee", action)
	}

	employees := r.Group("/employees")
	employees.GET("", readLimit, handler.GetAll)
	employees.GET("/options", optionsLimit, handler.GetOptions)
	employees.GET("/:id", readLimit, handler.GetById)

	employees.POST("", middleware.RateLimitByUser(0.1, 1), can("create"), handler.Create)
	employees.PUT("/:id", middleware.RateLimitByUser(0.5, 2), can("update"), handler.Update)
	employees.DELETE("/:id", middleware.RateLimitByUser(0.05, 1), can("delete"), handler.Delete)
}
