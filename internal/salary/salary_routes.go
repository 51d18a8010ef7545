package salary

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	salary := r.Group("/salary")
	{
		salary.POST("/calculate/:employee_id", middleware.RBACAuthorize(rbacService, "salary", "calculate"), handler.Calculate)
		salary.POST("/records",
			middleware.RBACAuthorize(rbacService, "salary", "create"),
			middleware.Idempotency(rdb),
			handler.CreateRecord,
		)
		salary.GET("/records/:employee_id", handler.GetRecordsByEmployee)
	}
}
