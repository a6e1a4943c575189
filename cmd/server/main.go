package main

import (
	"log"
	"net/http"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/migrations"
	"storefront/internal/redis"
	"storefront/internal/repository"
	"storefront/internal/services"
	"storefront/internal/storage"
	"storefront/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Redis backs order numbering and the checkout token cache. The API
	// works without it, so a connection failure is not fatal.
	var orderSequencer services.OrderSequencer
	var tokenCache services.TokenCache
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Redis unavailable, order numbers fall back to timestamps: %v", err)
	} else {
		orderSequencer = redisClient
		tokenCache = redisClient
	}

	// Photo uploads need an S3 bucket configured.
	var photoUploader services.PhotoUploader
	if cfg.S3Bucket != "" {
		uploader, err := storage.NewS3Uploader(cfg.S3Bucket)
		if err != nil {
			log.Printf("Warning: S3 unavailable, photo uploads disabled: %v", err)
		} else {
			photoUploader = uploader
		}
	}

	// Initialize repositories
	businessRepo := repository.NewBusinessRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	productSizeRepo := repository.NewProductSizeRepository(db)
	promoCodeRepo := repository.NewPromoCodeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	checkoutLinkRepo := repository.NewCheckoutLinkRepository(db)

	// Initialize services
	businessService := services.NewBusinessService(businessRepo)
	customerService := services.NewCustomerService(customerRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	productService := services.NewProductService(productRepo, photoUploader)
	productSizeService := services.NewProductSizeService(productSizeRepo)
	promoCodeService := services.NewPromoCodeService(promoCodeRepo)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, productRepo, orderSequencer)
	checkoutLinkService := services.NewCheckoutLinkService(
		checkoutLinkRepo, orderRepo, tokenCache,
		time.Duration(cfg.CheckoutLinkTTL)*time.Second,
	)

	// Initialize handlers
	businessHandler := handlers.NewBusinessHandler(businessService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	productHandler := handlers.NewProductHandler(productService)
	productSizeHandler := handlers.NewProductSizeHandler(productSizeService)
	promoCodeHandler := handlers.NewPromoCodeHandler(promoCodeService)
	orderHandler := handlers.NewOrderHandler(orderService)
	checkoutLinkHandler := handlers.NewCheckoutLinkHandler(checkoutLinkService)

	// Setup routes
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	serverMetrics := metrics.NewServerMetrics()
	router.Use(serverMetrics.Middleware())
	router.GET("/metrics", metrics.Handler())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Storefront API is running"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	business := router.Group("/business")
	{
		business.POST("", businessHandler.CreateBusiness)
		business.GET("", businessHandler.GetAllBusinesses)
		business.GET("/:businessId", businessHandler.GetBusiness)
		business.PUT("/:businessId", businessHandler.UpdateBusiness)
		business.DELETE("/:businessId", businessHandler.DeleteBusiness)
	}

	customers := router.Group("/customers")
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.GetAllCustomers)
		customers.GET("/:customerId", customerHandler.GetCustomer)
		customers.PUT("/:customerId", customerHandler.UpdateCustomer)
		customers.DELETE("/:customerId", customerHandler.DeleteCustomer)
		customers.POST("/:customerId/cod-risk", customerHandler.FlagCODRisk)
		customers.DELETE("/:customerId/cod-risk", customerHandler.RemoveCODRiskFlag)
		customers.GET("/:customerId/spending", customerHandler.GetCustomerSpending)
	}

	inventory := router.Group("/inventory")
	{
		inventory.POST("", inventoryHandler.CreateInventory)
		inventory.GET("", inventoryHandler.GetAllInventories)
		inventory.GET("/:inventoryId", inventoryHandler.GetInventory)
		inventory.PUT("/:inventoryId", inventoryHandler.UpdateInventory)
		inventory.DELETE("/:inventoryId", inventoryHandler.DeleteInventory)
	}

	products := router.Group("/products")
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.GetAllProducts)
		products.GET("/:productId", productHandler.GetProduct)
		products.PUT("/:productId", productHandler.UpdateProduct)
		products.DELETE("/:productId", productHandler.DeleteProduct)
		products.POST("/:productId/photo", productHandler.UploadPhoto)
	}

	productSizes := router.Group("/product-sizes")
	{
		productSizes.POST("", productSizeHandler.CreateProductSize)
		productSizes.GET("", productSizeHandler.GetAllProductSizes)
		productSizes.GET("/:sizeId", productSizeHandler.GetProductSize)
		productSizes.PUT("/:sizeId", productSizeHandler.UpdateProductSize)
		productSizes.DELETE("/:sizeId", productSizeHandler.DeleteProductSize)
	}

	promoCodes := router.Group("/promo-codes")
	{
		promoCodes.POST("", promoCodeHandler.CreatePromoCode)
		promoCodes.GET("", promoCodeHandler.GetAllPromoCodes)
		promoCodes.POST("/validate", promoCodeHandler.ValidatePromoCode)
		promoCodes.GET("/:promoCodeId", promoCodeHandler.GetPromoCode)
		promoCodes.PUT("/:promoCodeId", promoCodeHandler.UpdatePromoCode)
		promoCodes.DELETE("/:promoCodeId", promoCodeHandler.DeletePromoCode)
		promoCodes.POST("/:promoCodeId/activate", promoCodeHandler.ActivatePromoCode)
		promoCodes.POST("/:promoCodeId/deactivate", promoCodeHandler.DeactivatePromoCode)
	}

	orders := router.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.GetAllOrders)
		orders.GET("/:orderId", orderHandler.GetOrder)
		orders.PUT("/:orderId", orderHandler.UpdateOrder)
		orders.DELETE("/:orderId", orderHandler.DeleteOrder)
		orders.GET("/:orderId/items", orderHandler.GetOrderItems)
		orders.POST("/:orderId/items", orderHandler.AddOrderItem)
		orders.DELETE("/items/:orderItemId", orderHandler.RemoveOrderItem)
	}

	checkoutLinks := router.Group("/checkout-links")
	{
		checkoutLinks.POST("", checkoutLinkHandler.CreateCheckoutLink)
		checkoutLinks.GET("", checkoutLinkHandler.GetAllCheckoutLinks)
		checkoutLinks.GET("/token/:token", checkoutLinkHandler.ResolveToken)
		checkoutLinks.GET("/:linkId", checkoutLinkHandler.GetCheckoutLink)
		checkoutLinks.POST("/:linkId/deactivate", checkoutLinkHandler.DeactivateCheckoutLink)
		checkoutLinks.DELETE("/:linkId", checkoutLinkHandler.DeleteCheckoutLink)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
