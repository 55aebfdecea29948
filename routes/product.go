package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EkeminiThompson/ecommerce/controller"
	"github.com/EkeminiThompson/ecommerce/middleware"
)

// ProductRoute mounts the catalog under /api/products. Reads are public;
// mutation requires an admin bearer credential.
func ProductRoute(router *gin.Engine) {
	products := router.Group("/api/products")
	{
		products.GET("", controller.GetProducts)
		products.GET("/:id", controller.GetProductByID)
		products.POST("", middleware.RequireAuth, middleware.RequireAdmin, controller.CreateProduct)
		products.PUT("/:id", middleware.RequireAuth, middleware.RequireAdmin, controller.UpdateProduct)
	}
}
