package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/handlers"
)

func registerMatchRoutes(r *gin.Engine, handler *handlers.MatchHandler) {
	r.GET("/match/:email", handler.MatchedJobs)
}
