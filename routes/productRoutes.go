package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/polleria/polleria-api/controllers"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/products", controllers.GetProducts)
}
