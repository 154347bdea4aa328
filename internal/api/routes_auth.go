package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/handlers"
)

func registerAuthRoutes(r *gin.Engine, handler *handlers.AuthHandler) {
	r.POST("/signup", handler.Signup)
	r.POST("/login", handler.Login)
}
