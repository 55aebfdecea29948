package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EkeminiThompson/ecommerce/controller"
	"github.com/EkeminiThompson/ecommerce/middleware"
)

// AuthRoute mounts login and admin registration, both rate limited.
func AuthRoute(router *gin.Engine) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", middleware.RateLimiter(), controller.Login)
		auth.POST("/register", middleware.RateLimiter(), controller.Register)
	}
}
