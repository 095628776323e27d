package models

import (
	"fmt"

	"github.com/sbennell/Asset-System/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Normalize driver-specific unique/foreign-key violations into
		// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&User{},
		&Category{},
		&Manufacturer{},
		&Supplier{},
		&Location{},
		&Asset{},
		&SavedFilter{},
		&Setting{},
		&ActivityLog{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData creates default settings if they do not exist yet.
func SeedDefaultData() error {
	defaults := []Setting{
		{Key: SettingLabelShowAssignedTo, Value: "true"},
		{Key: SettingLabelShowModel, Value: "true"},
		{Key: SettingLabelShowSerialNumber, Value: "true"},
		{Key: SettingLogRetentionDays, Value: "90"},
	}

	for _, s := range defaults {
		var count int64
		DB.Model(&Setting{}).Where("`key` = ?", s.Key).Count(&count)
		if count == 0 {
			if err := DB.Create(&s).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
