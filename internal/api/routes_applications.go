package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/handlers"
)

func registerApplicationRoutes(r *gin.Engine, handler *handlers.ApplicationHandler) {
	r.POST("/apply", handler.Apply)

	group := r.Group("/applications")
	{
		group.GET("/candidate/:email", handler.ListByCandidate)
		group.GET("/job/:id", handler.ListByJob)
		group.PUT("/:id/status", handler.UpdateStatus)
	}
}
