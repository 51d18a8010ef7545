package request

import (
	"github.com/gin-gonic/gin"
)

// Approve dan reject tidak memakai RBACAuthorize: role dan level
// diperiksa oleh ApprovalChain di service.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	requests := r.Group("/requests")
	{
		requests.POST("", handler.Create)
		requests.GET("", handler.GetAll)
		requests.GET("/pending-approval", handler.GetPendingApproval)
		requests.GET("/:id", handler.GetById)
		requests.PUT("/:id/approve", handler.Approve)
		requests.PUT("/:id/reject", handler.Reject)
	}
}
