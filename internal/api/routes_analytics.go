package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/handlers"
)

func registerAnalyticsRoutes(r *gin.Engine, handler *handlers.AnalyticsHandler) {
	group := r.Group("/analytics")
	{
		group.GET("/candidate/:email", handler.Candidate)
		group.GET("/company/:email", handler.Company)
	}

	r.GET("/activities/:email", handler.Activities)
}
