package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EkeminiThompson/ecommerce/controller"
	"github.com/EkeminiThompson/ecommerce/middleware"
)

// OrderRoute mounts the order endpoints; every one requires a credential.
// /myorders must be registered before /:id so it is not captured as an id.
func OrderRoute(router *gin.Engine) {
	orders := router.Group("/api/orders")
	orders.Use(middleware.RequireAuth)
	{
		orders.POST("", controller.CreateOrder)
		orders.GET("/myorders", controller.GetMyOrders)
		orders.GET("/:id", controller.GetOrderByID)
		orders.PUT("/:id/pay", controller.PayOrder)
	}
}
