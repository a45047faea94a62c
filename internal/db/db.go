package db

import (
	"community_admin/internal/config" // Custom import path (Config)
	"fmt"                             // Error wrapping
	"sync"                            // Lazy singleton

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"    // MySQL driver for local development
	"gorm.io/driver/postgres" // Postgres driver for the managed backend
	"gorm.io/gorm"            // GORM ORM library
	"gorm.io/gorm/logger"
)

var (
	instance *gorm.DB  // Shared handle, built once per process
	once     sync.Once // Guards instance
	openErr  error     // Error from the single construction attempt
)

// Get returns the process-wide database handle, opening it on first use
func Get(cfg *config.Config) (*gorm.DB, error) {
	once.Do(func() {
		instance, openErr = Open(cfg)
	})
	return instance, openErr
}

// Open connects to the database selected by cfg.DBDriver
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	gormCfg := &gorm.Config{TranslateError: true} // Surface gorm.ErrDuplicatedKey instead of driver text
	if cfg.IsProd {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}
	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	logrus.WithFields(logrus.Fields{"driver": cfg.DBDriver, "host": cfg.DBHost}).Info("Database connected")
	return db, nil
}

// Dialector picks the gorm dialector for the configured driver
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "", "postgres":
		return postgres.Open(cfg.DSN()), nil
	case "mysql":
		return mysql.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
