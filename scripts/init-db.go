package main

import (
	"fmt"
	"log"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
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
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
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
		log.Fatal("Failed to migrate database:", err)
	}

	// Create a demo business so the API is usable right away
	fmt.Println("Creating demo business...")
	businessRepo := repository.NewBusinessRepository(db)
	businessService := services.NewBusinessService(businessRepo)

	existing, err := businessService.FindBusinessByEmail("demo@storefront.local")
	if err == nil && existing != nil {
		fmt.Println("Demo business already exists")
		return
	}

	businessID, err := businessService.CreateBusiness(services.CreateBusinessInput{
		BusinessName: "Demo Store",
		OwnerName:    "Demo Owner",
		Email:        "demo@storefront.local",
		PhoneNumber:  "6281234567890",
		Password:     "demo123",
	})
	if err != nil {
		log.Printf("Warning: Failed to create demo business: %v", err)
	} else {
		fmt.Println("Demo business created successfully")
		fmt.Println("Business ID:", businessID)
		fmt.Println("Email: demo@storefront.local")
		fmt.Println("Password: demo123")
	}

	fmt.Println("Database initialization completed successfully!")
}
