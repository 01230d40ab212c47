package service

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/ooda-AI-GB/gb-gdev-legal/config"
	"github.com/ooda-AI-GB/gb-gdev-legal/model"
)

// Open connects to the configured database. SQLite is the default driver;
// Postgres is selected with database.driver: postgres.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates any missing tables for the five entities.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Contract{},
		&model.Clause{},
		&model.ComplianceItem{},
		&model.LegalContact{},
		&model.LegalNote{},
	)
}
