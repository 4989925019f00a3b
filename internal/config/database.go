package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"invoice-dashboard-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var gormLogLevels = map[string]logger.LogLevel{
	"silent": logger.Silent,
	"error":  logger.Error,
	"warn":   logger.Warn,
	"info":   logger.Info,
}

// GormConfig is shared by InitDB and tests. Each write is a single statement,
// so gorm's implicit transaction is off.
func GormConfig(level string) *gorm.Config {
	lvl, ok := gormLogLevels[strings.ToLower(level)]
	if !ok {
		lvl = logger.Warn
	}
	return &gorm.Config{
		SkipDefaultTransaction: true,
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  lvl,
				IgnoreRecordNotFoundError: true,
			},
		),
	}
}

// InitDB opens the PostgreSQL pool and, unless disabled, migrates the schema.
func InitDB(cfg DB, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Info("database schema migrated")
	}
	return db, nil
}

// Migrate creates or updates the dashboard tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.Revenue{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
