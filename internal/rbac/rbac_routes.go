package rbac

import "github.com/gin-gonic/gin"

// RegisterRoutes memasang endpoint introspeksi rbac untuk user yang sedang login.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/rbac/permissions", handler.MyPermissions)
	r.POST("/rbac/enforce", handler.Enforce)
}
