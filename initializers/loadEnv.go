package initializers

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultAdminPin = "1234"

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables.")
	}
}

// AdminPin is the shared secret guarding the admin surface. The default
// matches the demo PIN the storefront ships with.
func AdminPin() string {
	if pin := os.Getenv("ADMIN_PIN"); pin != "" {
		return pin
	}
	return defaultAdminPin
}

func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}
