package main

import (
	"log" // log package is needed for logging

	"github.com/Cam96stanley/e-com-api/internal/api"        // Custom package for API handlers
	"github.com/Cam96stanley/e-com-api/internal/config"     // Custom package for configuration
	"github.com/Cam96stanley/e-com-api/internal/db"         // Custom package for database access
	"github.com/Cam96stanley/e-com-api/internal/middleware" // Custom package for middleware
	"github.com/Cam96stanley/e-com-api/internal/validation" // Custom package for validation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	database, err := db.Connect(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Report validation errors under their json field names
	validation.Init()

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance
	r.Use(middleware.RequestLogger())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	RegisterRoutes(r, database)

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}

// RegisterRoutes wires every resource's route group onto the router
func RegisterRoutes(r *gin.Engine, database *gorm.DB) {
	// User routes
	users := r.Group("/users")
	users.GET("", api.ListUsersHandler(database))
	users.GET("/:id", api.GetUserHandler(database))
	users.POST("", api.CreateUserHandler(database))
	users.PUT("/:id", api.UpdateUserHandler(database))
	users.DELETE("/:id", api.DeleteUserHandler(database))

	// Product routes
	products := r.Group("/products")
	products.GET("", api.ListProductsHandler(database))
	products.GET("/:id", api.GetProductHandler(database))
	products.POST("", api.CreateProductHandler(database))
	products.PUT("/:id", api.UpdateProductHandler(database))
	products.DELETE("/:id", api.DeleteProductHandler(database))

	// Order routes
	orders := r.Group("/orders")
	orders.GET("/user/:user_id", api.ListUserOrdersHandler(database))
	orders.GET("/:order_id/products", api.ListOrderProductsHandler(database))
	orders.POST("", api.CreateOrderHandler(database))
	orders.DELETE("/:order_id", api.DeleteOrderHandler(database))
	orders.PUT("/:order_id/add_product/:product_id", api.AddProductHandler(database))
	orders.DELETE("/:order_id/remove_product", api.RemoveProductHandler(database))
}
