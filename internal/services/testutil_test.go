package services

import (
	"fmt"
	"testing"

	"github.com/sbennell/Asset-System/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Manufacturer{},
		&models.Supplier{},
		&models.Location{},
		&models.Asset{},
		&models.SavedFilter{},
		&models.Setting{},
		&models.ActivityLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// createTestAsset inserts a minimal asset and returns it.
func createTestAsset(t *testing.T, db *gorm.DB, itemNumber, status string) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		ItemNumber: itemNumber,
		Status:     status,
		Condition:  "GOOD",
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset %s: %v", itemNumber, err)
	}
	return asset
}

// createTestCategory inserts a category and returns it.
func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	cat := &models.Category{Name: name}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("failed to create test category %s: %v", name, err)
	}
	return cat
}
