package initializers

import (
	"log"

	"github.com/polleria/polleria-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{})
	log.Println("Database synced successfully.")
}
