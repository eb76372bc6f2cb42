package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/polleria/polleria-api/initializers"
)

type adminLoginRequest struct {
	Pin string `json:"pin"`
}

func generateAdminToken() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
	})
	return token.SignedString(initializers.JWTSecret())
}

// AdminLogin exchanges the admin PIN for a short-lived bearer token, so the
// admin panel does not have to resend the PIN on every request.
func AdminLogin(ctx *gin.Context) {
	var loginData adminLoginRequest
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if loginData.Pin != initializers.AdminPin() {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token, err := generateAdminToken()
	if err != nil {
		log.Println("Failed to generate admin token:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": token})
}
