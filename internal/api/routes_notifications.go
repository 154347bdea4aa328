package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/handlers"
)

func registerNotificationRoutes(r *gin.Engine, handler *handlers.NotificationHandler) {
	group := r.Group("/notifications")
	{
		group.POST("", handler.Create)
		group.GET("/:email", handler.List)
		group.GET("/:email/unread-count", handler.UnreadCount)
		group.PUT("/:id/read", handler.MarkRead)
		group.PUT("/user/:email/read-all", handler.MarkAllRead)
	}
}
