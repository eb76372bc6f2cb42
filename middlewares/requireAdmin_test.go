package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/ping", RequireAdmin(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestRequireAdmin_Pin(t *testing.T) {
	t.Setenv("ADMIN_PIN", "9999")
	router := adminTestRouter()

	tests := []struct {
		name       string
		pin        string
		wantStatus int
	}{
		{name: "correct pin", pin: "9999", wantStatus: http.StatusOK},
		{name: "wrong pin", pin: "1111", wantStatus: http.StatusUnauthorized},
		{name: "no credentials at all", pin: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.pin != "" {
				req.Header.Set("X-Admin-Pin", tt.pin)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestRequireAdmin_DefaultPin(t *testing.T) {
	t.Setenv("ADMIN_PIN", "")
	router := adminTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-Admin-Pin", "1234")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireAdmin_BearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := adminTestRouter()

	validClaims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{
			name:       "valid admin token",
			token:      signToken(t, "test-secret", validClaims),
			wantStatus: http.StatusOK,
		},
		{
			name: "token without admin role",
			token: signToken(t, "test-secret", jwt.MapClaims{
				"role": "viewer",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token signed with a different secret",
			token:      signToken(t, "other-secret", validClaims),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			token: signToken(t, "test-secret", jwt.MapClaims{
				"role": "admin",
				"exp":  time.Now().Add(-time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			token:      "not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
