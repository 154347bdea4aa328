package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/handlers"
)

func registerInterviewRoutes(r *gin.Engine, handler *handlers.InterviewHandler) {
	r.POST("/interview", handler.NextQuestion)

	group := r.Group("/interviews")
	{
		group.POST("/save", handler.SaveResults)
		group.GET("/application/:id", handler.ListByApplication)
		group.GET("/candidate/:email", handler.ListByCandidate)
		group.GET("/job/:id", handler.ListByJob)
	}
}
