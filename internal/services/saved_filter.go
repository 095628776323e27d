package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/sbennell/Asset-System/internal/models"
	"gorm.io/gorm"
)

// SavedFilterService manages named asset-list queries. Filter and sort
// configurations are opaque to the server and stored as serialized JSON.
type SavedFilterService struct {
	db *gorm.DB
}

func NewSavedFilterService(db *gorm.DB) *SavedFilterService {
	return &SavedFilterService{db: db}
}

type CreateSavedFilterRequest struct {
	Name         string          `json:"name"`
	FilterConfig json.RawMessage `json:"filter_config"`
	SortConfig   json.RawMessage `json:"sort_config"`
	IsDefault    bool            `json:"is_default"`
	Description  string          `json:"description"`
}

// normalizeConfig turns a raw JSON value into its stored string form: a JSON
// string token is unwrapped (the client already serialized it), any other
// value is kept as its compact JSON text.
func normalizeConfig(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func (s *SavedFilterService) List() ([]models.SavedFilter, error) {
	var filters []models.SavedFilter
	if err := s.db.Order("name ASC").Find(&filters).Error; err != nil {
		return nil, err
	}
	return filters, nil
}

func (s *SavedFilterService) Create(req *CreateSavedFilterRequest) (*models.SavedFilter, error) {
	name := strings.TrimSpace(req.Name)
	filterConfig := normalizeConfig(req.FilterConfig)
	if name == "" || filterConfig == "" {
		return nil, NewValidationError("Name and filter config are required")
	}

	var count int64
	if err := s.db.Model(&models.SavedFilter{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewDuplicateError("Filter name already exists")
	}

	filter := models.SavedFilter{
		Name:         name,
		FilterConfig: filterConfig,
		IsDefault:    req.IsDefault,
		Description:  req.Description,
	}
	if sortConfig := normalizeConfig(req.SortConfig); sortConfig != "" {
		filter.SortConfig = &sortConfig
	}

	// Only one filter can be the default at a time; unsetting the previous
	// default and creating the new one must succeed or fail together.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.SavedFilter{}).Where("is_default = ?", true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&filter).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewDuplicateError("Filter name already exists")
		}
		return nil, err
	}
	return &filter, nil
}

func (s *SavedFilterService) Delete(id string) error {
	result := s.db.Delete(&models.SavedFilter{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("Filter not found")
	}
	return nil
}
