package migrations

import (
	"log"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// RunMigrations creates or updates the schema for every model.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Business{},
		&models.Customer{},
		&models.Inventory{},
		&models.Product{},
		&models.ProductSize{},
		&models.PromoCode{},
		&models.Order{},
		&models.OrderItem{},
		&models.CheckoutLink{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migrations completed")
	return nil
}
