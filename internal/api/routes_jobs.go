package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/handlers"
)

func registerJobRoutes(r *gin.Engine, handler *handlers.JobHandler) {
	group := r.Group("/jobs")
	{
		group.POST("", handler.Create)
		group.GET("", handler.List)
		group.GET("/:id", handler.Get)
		group.GET("/company/:email", handler.ListByCompany)
		group.DELETE("/:id", handler.Delete)
	}
}
