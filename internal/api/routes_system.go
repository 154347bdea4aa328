package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/handlers"
)

func registerSystemRoutes(r *gin.Engine, handler *handlers.SystemHandler) {
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
	r.GET("/stats", handler.Stats)
	r.POST("/reset/:type", handler.Reset)
}
