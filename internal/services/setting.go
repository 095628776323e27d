package services

import (
	"errors"
	"strconv"

	"github.com/sbennell/Asset-System/internal/models"
	"gorm.io/gorm"
)

// SettingService is a string key/value store with upsert writes. Reads of
// absent keys resolve to "" rather than an error; concurrent writes to the
// same key are last-writer-wins.
type SettingService struct {
	db *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{db: db}
}

// Get returns the value for key, or "" when the key was never set.
func (s *SettingService) Get(key string) (string, error) {
	var setting models.Setting
	if err := s.db.Where("`key` = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

// GetWithDefault returns the value for key, falling back to defaultValue
// when the key is absent or the lookup fails.
func (s *SettingService) GetWithDefault(key, defaultValue string) string {
	var setting models.Setting
	if err := s.db.Where("`key` = ?", key).First(&setting).Error; err != nil {
		return defaultValue
	}
	return setting.Value
}

// GetBool interprets the stored value as a boolean, with a default for
// absent or unparseable values.
func (s *SettingService) GetBool(key string, defaultValue bool) bool {
	raw := s.GetWithDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

// GetInt interprets the stored value as an integer, with a default for
// absent or unparseable values.
func (s *SettingService) GetInt(key string, defaultValue int) int {
	raw := s.GetWithDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

// Set creates or updates the key with value.
func (s *SettingService) Set(key, value string) error {
	var setting models.Setting
	err := s.db.Where("`key` = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.Setting{Key: key, Value: value}
		return s.db.Create(&setting).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&setting).Update("value", value).Error
}

// SetBool stores a boolean value under key.
func (s *SettingService) SetBool(key string, value bool) error {
	return s.Set(key, strconv.FormatBool(value))
}
