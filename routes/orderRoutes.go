package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/polleria/polleria-api/controllers"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/orders", controllers.CreateOrder)
}
