package service

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/ooda-AI-GB/gb-gdev-legal/config"
)

// newTestDB opens a named in-memory SQLite database shared across the
// connection pool and migrates the schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func TestOpenSQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", DSN: "file:open-test?mode=memory&cache=shared"}
	db, err := Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open sqlite database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Errorf("Failed to migrate: %v", err)
	}
}

func TestOpenDefaultsToSQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{DSN: "file:open-default-test?mode=memory&cache=shared"}
	if _, err := Open(cfg); err != nil {
		t.Errorf("Expected empty driver to mean sqlite, got error: %v", err)
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "oracle", DSN: "whatever"}
	if _, err := Open(cfg); err == nil {
		t.Error("Expected error for unsupported driver")
	}
}
