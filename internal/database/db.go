package database

import (
	"fmt"
	"log"

	"github.com/jobfolio/jobhub/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens (or creates) the embedded SQLite database at path and runs
// migrations. The handle is returned to the caller instead of being stashed
// in a package variable so tests can spin up isolated databases.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite db %s: %w", path, err)
	}

	// SQLite allows a single writer; cap the pool so concurrent API
	// requests queue instead of hitting SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	log.Println("Database connection established:", path)

	if err := db.AutoMigrate(&models.Job{}, &models.UserProfile{}, &models.ProcessedFile{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
