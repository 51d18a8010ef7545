package notification

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", handler.GetAll)
		notifications.PUT("/read-all", handler.MarkAllRead)
		notifications.PUT("/:id/read", handler.MarkRead)
	}
}
