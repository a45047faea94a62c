package main

import (
	"context" // context package is needed for Redis operations

	"community_admin/internal/api"     // Custom package for API handlers
	"community_admin/internal/config"  // Custom package for configuration
	"community_admin/internal/db"      // Shared database handle
	"community_admin/internal/service" // Console operations
	"community_admin/internal/store"   // Table client
	"community_admin/internal/upload"  // Image uploads
	"community_admin/internal/utils"   // Logger setup

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	utils.SetupLogger(cfg.LogLevel, cfg.LogFormat)

	// Connect to the database once for the whole process
	database, err := db.Get(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "" {
		logrus.Warn("JWT_SECRET is empty, every admin request will be rejected")
	}
	if cfg.CloudinaryCloudName == "" {
		logrus.Warn("CLOUDINARY_CLOUD_NAME is empty, image uploads are disabled")
	}

	uploader, err := upload.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryPreset, "")
	if err != nil {
		logrus.Fatalf("failed to configure image uploads: %v", err)
	}

	services := service.New(store.New(database), redisClient)
	r, err := api.NewRouter(api.Deps{
		Services:       services,
		Uploader:       uploader,
		JWTSecret:      cfg.JWTSecret,
		RequestTimeout: cfg.RequestTimeout,
		UploadFolder:   cfg.CloudinaryFolder,
		TrustedProxies: cfg.TrustedProxies,
	})
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	logrus.WithFields(logrus.Fields{"port": cfg.AppPort, "driver": cfg.DBDriver}).Info("Server running")
	if err := r.Run(":" + cfg.AppPort); err != nil { // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}
