package main

import (
	"community_admin/internal/config"  // Environment configuration
	"community_admin/internal/db"      // Database connection
	"community_admin/internal/service" // Console operations
	"community_admin/internal/store"   // Table handles
	"community_admin/internal/utils"   // Logger setup

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/spf13/cobra"       // CLI framework
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "consolectl",
	Short:         "Operate the community admin console from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.LoadConfig()                      // Same .env as the server
		utils.SetupLogger(cfg.LogLevel, cfg.LogFormat) // Setup logger
	},
}

// openServices connects to the configured database and Redis
func openServices() (*service.Services, func(), error) {
	database, err := db.Get(cfg) // Connect to the database
	if err != nil {
		return nil, nil, err
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB}) // Connect to Redis
	return service.New(store.New(database), rdb), func() { _ = rdb.Close() }, nil
}
