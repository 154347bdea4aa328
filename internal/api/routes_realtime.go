package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/handlers"
)

func registerRealtimeRoutes(r *gin.Engine, handler *handlers.StreamHandler) {
	r.GET("/ws/:email", handler.Connect)
}
