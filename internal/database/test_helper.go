package database

import (
	"testing"

	"github.com/TomaszGajek/settlements-sub000/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with foreign keys enforced and the
// ledger schema migrated. A single connection keeps every query on the same database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := gormOpenSQLite(":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := db.CreateIndexes(); err != nil {
		t.Fatalf("failed to create test indexes: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func gormOpenSQLite(dsn string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(dsn), gormConfig(logger.Silent))
	if err != nil {
		return nil, err
	}
	return &DB{
		DB: gdb,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}, nil
}

// CleanupTestDB removes all ledger rows, children first
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range []string{"transactions", "categories"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
