package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/handlers"
)

func registerProfileRoutes(r *gin.Engine, handler *handlers.ProfileHandler) {
	group := r.Group("/profile")
	{
		group.POST("", handler.Save)
		group.GET("/company-view/:candidate_email", handler.CompanyView)
		group.GET("/:email", handler.Get)
	}
}
