package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"github.com/AzizElBechir/AzPay/internal/api"     // Custom package for HTTP handlers
	"github.com/AzizElBechir/AzPay/internal/auth"    // Custom package for authentication
	"github.com/AzizElBechir/AzPay/internal/config"  // Custom package for configuration
	"github.com/AzizElBechir/AzPay/internal/session" // Custom package for sessions
	"github.com/AzizElBechir/AzPay/internal/store"   // Custom package for persistence

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

	// Connect to the database; TranslateError turns driver duplicate-key
	// errors into gorm.ErrDuplicatedKey for the store layer
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client for the session store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the collaborators the handlers depend on
	users := store.NewGormUserStore(db)                                // User persistence
	txs := store.NewGormTransactionStore(db)                           // Transaction persistence
	authSvc := auth.NewService(users, auth.BcryptHasher{})             // Registration and login
	sessions := session.NewRedisStore(redisClient, session.DefaultTTL) // Server-side sessions

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	r.LoadHTMLGlob("web/templates/*.html") // HTML views

	// Wire the HTTP surface
	api.RegisterRoutes(r, authSvc, sessions, txs, cfg.SessionSecret, cfg.IsProd)

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
