package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DarkSyed/sugari-sub000/internal/config"
	"github.com/DarkSyed/sugari-sub000/internal/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Open opens the SQLite database file named in cfg, creating the data
// directory and the schema when missing. Safe to call on every launch.
func Open(cfg config.StorageConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.DBFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	dsn := cfg.DBFile + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Init(db); err != nil {
		Close(db)
		return nil, err
	}

	logger.Debug("database ready", "path", cfg.DBFile)
	return db, nil
}

// Init creates any missing tables and seeds the settings singleton. It is
// idempotent: migration is additive (IF NOT EXISTS semantics) and the seed
// is an upsert that does nothing when the row already exists, so concurrent
// first reads can never produce a second settings row.
func Init(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return seedSettings(db)
}

func seedSettings(db *gorm.DB) error {
	defaults := DefaultSettings()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
		return fmt.Errorf("failed to seed default settings: %w", err)
	}
	return nil
}

// Reset drops every table and rebuilds the empty schema with a default
// settings row. The whole sequence runs in a single transaction so a
// failure cannot leave a partially dropped schema behind.
func Reset(db *gorm.DB) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Migrator().DropTable(Models()...); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
		if err := tx.AutoMigrate(Models()...); err != nil {
			return fmt.Errorf("failed to recreate schema: %w", err)
		}
		return seedSettings(tx)
	})
	if err != nil {
		logger.Error("database reset failed", "error", err)
		return err
	}
	logger.Info("database reset completed")
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
