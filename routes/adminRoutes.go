package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/polleria/polleria-api/controllers"
	"github.com/polleria/polleria-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	server.POST("/admin/login", controllers.AdminLogin)

	admin := server.Group("/admin", middlewares.RequireAdmin())
	{
		admin.GET("/products", controllers.GetProducts)
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.POST("/products/:id/image", controllers.UploadProductImage)

		admin.GET("/orders", controllers.GetOrders)
		admin.GET("/orders/summary", controllers.GetOrderSummary)
		admin.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
		admin.DELETE("/orders/:id", controllers.DeleteOrder)
	}
}
