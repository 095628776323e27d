package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedFilter is a named asset-list query a user can recall later.
// FilterConfig and SortConfig are stored as opaque serialized JSON.
type SavedFilter struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"uniqueIndex;size:200;not null" json:"name"`
	FilterConfig string    `gorm:"type:text;not null" json:"filter_config"`
	SortConfig   *string   `gorm:"type:text" json:"sort_config"`
	IsDefault    bool      `gorm:"default:false" json:"is_default"`
	Description  string    `gorm:"size:500" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (f *SavedFilter) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
