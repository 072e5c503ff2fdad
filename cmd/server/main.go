package main

import (
	"context"                          // context package is needed for Redis operations
	"log"                              // log package is needed for logging
	"admin_dashboard/internal/api"     // Custom package for API handlers
	"admin_dashboard/internal/config"  // Custom package for configuration
	"admin_dashboard/internal/storage" // Custom package for the repository

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Build the repository behind the Storage contract. The default is the
	// self-contained in-memory store; mysql substitutes a durable backing
	// store without changing the route layer.
	var store storage.Storage
	switch cfg.StorageDriver {
	case "mysql":
		db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
		}
		store = storage.NewGorm(db)
	case "memory":
		mem := storage.NewMemory()
		if cfg.SeedDemo {
			mem.SeedDemoData() // Load the sample dashboard dataset
		}
		store = mem
	default:
		logrus.Fatalf("unknown storage driver: %s", cfg.StorageDriver)
	}

	// Setup Redis client for response caching; empty REDIS_ADDR disables it
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// User management routes
	users := r.Group("/api/users")
	users.GET("", api.ListUsersHandler(store, redisClient))          // List users endpoint
	users.GET("/:id", api.GetUserHandler(store))                     // Get user endpoint
	users.POST("", api.CreateUserHandler(store, redisClient))        // Create user endpoint
	users.PATCH("/:id", api.UpdateUserHandler(store, redisClient))   // Update user endpoint
	users.DELETE("/:id", api.DeleteUserHandler(store, redisClient))  // Delete user endpoint

	// Dashboard routes
	dashboard := r.Group("/api/dashboard")
	dashboard.GET("/metrics", api.GetMetricsHandler(store, redisClient))            // Metrics endpoint
	dashboard.GET("/transactions", api.GetTransactionsHandler(store, redisClient))  // Transaction history endpoint
	dashboard.POST("/transactions", api.CreateTransactionHandler(store, redisClient)) // Create transaction endpoint
	dashboard.GET("/activities", api.GetActivitiesHandler(store, redisClient))      // Activity feed endpoint
	dashboard.POST("/activities", api.CreateActivityHandler(store, redisClient))    // Create activity endpoint
	dashboard.GET("/revenue", api.GetRevenueHandler(store, redisClient))            // Revenue series endpoint
	dashboard.POST("/revenue", api.CreateRevenueHandler(store, redisClient))        // Create revenue endpoint
	dashboard.GET("/export", api.ExportHandler(store))                              // Aggregate export endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
