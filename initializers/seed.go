package initializers

import (
	"log"

	"github.com/polleria/polleria-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

var seedProducts = []models.Product{
	{ID: 1, Name: "Combo Clásico", Description: "1/4 pollo + papas + ensalada", Price: decimal.NewFromInt(35), Category: "Combos"},
	{ID: 2, Name: "1/2 Pollo", Description: "Incluye papas y ensalada", Price: decimal.NewFromInt(55), Category: "Pollos"},
	{ID: 3, Name: "Coca-Cola 500ml", Description: "Bien fría", Price: decimal.NewFromInt(10), Category: "Bebidas"},
	{ID: 4, Name: "Promo 2x1 Alitas", Description: "Solo hoy", Price: decimal.NewFromInt(28), Category: "Promos"},
	{ID: 5, Name: "Postre Helado", Description: "Chocolate/Vainilla", Price: decimal.NewFromInt(12), Category: "Postres"},
}

// SeedProducts upserts the base catalog so a fresh deployment has something
// to sell. Admin edits to these rows survive restarts only for fields the
// seed does not carry, which mirrors the original seeding behavior.
func SeedProducts() {
	result := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "price", "category"}),
	}).Create(&seedProducts)
	if result.Error != nil {
		log.Println("Failed to seed products:", result.Error)
		return
	}
	log.Println("Catalog products seeded.")
}
