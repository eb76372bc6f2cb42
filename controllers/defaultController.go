package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"error": message})
}

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Pollería API.

PUBLIC
- GET "/products" - List the catalog
- POST "/orders" - Place an order

ADMIN (X-Admin-Pin header or Bearer token from /admin/login)
- POST "/admin/login" - Exchange the PIN for a token
- GET "/admin/products" - List the catalog
- POST "/admin/products" - Create a product
- PUT "/admin/products/{id}" - Update a product
- DELETE "/admin/products/{id}" - Delete a product
- POST "/admin/products/{id}/image" - Upload a product photo
- GET "/admin/orders" - List orders, newest first
- GET "/admin/orders/summary" - Sales report
- PATCH "/admin/orders/{id}/status" - Mark SOLD or CANCELED
- DELETE "/admin/orders/{id}" - Remove an order`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
