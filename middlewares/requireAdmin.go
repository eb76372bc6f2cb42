package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/polleria/polleria-api/initializers"
)

// RequireAdmin gates the admin surface. It accepts either the raw shared
// secret in the X-Admin-Pin header or a bearer token from /admin/login.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if pin := ctx.GetHeader("X-Admin-Pin"); pin != "" {
			if pin != initializers.AdminPin() {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			ctx.Next()
			return
		}

		auth := ctx.GetHeader("Authorization")
		if tokenString, ok := strings.CutPrefix(auth, "Bearer "); ok {
			if isAdminToken(tokenString) {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
}

func isAdminToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return initializers.JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	role, ok := claims["role"].(string)
	return ok && role == "admin"
}
