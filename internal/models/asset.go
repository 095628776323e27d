package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Asset is a tracked piece of IT equipment.
type Asset struct {
	ID               string        `gorm:"primaryKey;size:36" json:"id"`
	ItemNumber       string        `gorm:"uniqueIndex;size:100;not null" json:"item_number"`
	Status           string        `gorm:"size:100;index;not null" json:"status"`
	Condition        string        `gorm:"size:50" json:"condition"`
	Model            string        `gorm:"size:200" json:"model"`
	SerialNumber     string        `gorm:"size:200" json:"serial_number"`
	AssignedTo       string        `gorm:"size:200;index" json:"assigned_to"`
	CategoryID       *string       `gorm:"size:36;index" json:"category_id"`
	LocationID       *string       `gorm:"size:36;index" json:"location_id"`
	ManufacturerID   *string       `gorm:"size:36;index" json:"manufacturer_id"`
	SupplierID       *string       `gorm:"size:36;index" json:"supplier_id"`
	Category         *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Location         *Location     `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Manufacturer     *Manufacturer `gorm:"foreignKey:ManufacturerID" json:"manufacturer,omitempty"`
	Supplier         *Supplier     `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	DecommissionDate *time.Time    `json:"decommission_date"`
	Comments         string        `gorm:"type:text" json:"comments"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (a *Asset) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AssetStatuses is the full set of allowed asset status values.
var AssetStatuses = []string{
	"In Use",
	"In Use - Loaned to student",
	"In Use - Loaned to staff",
	"Awaiting allocation",
	"Awaiting delivery",
	"Awaiting collection",
	"Decommissioned - Beyond service age",
	"Decommissioned - Damaged",
	"Decommissioned - Stolen",
	"Decommissioned - In storage",
	"Decommissioned - User left school",
	"Decommissioned - Written Off",
	"Decommissioned - Unreturned",
	"Retired - Uncollected",
	"Retired - Lost",
}

// AssetConditions is the allowed set of condition values.
var AssetConditions = []string{
	"NEW",
	"EXCELLENT",
	"GOOD",
	"FAIR",
	"POOR",
	"NON_FUNCTIONAL",
}

// IsValidStatus reports whether s is one of AssetStatuses.
func IsValidStatus(s string) bool {
	for _, v := range AssetStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidCondition reports whether c is one of AssetConditions.
func IsValidCondition(c string) bool {
	for _, v := range AssetConditions {
		if v == c {
			return true
		}
	}
	return false
}

// IsDecommissioned reports whether status belongs to the decommissioned
// family ("Decommissioned - ..." values).
func IsDecommissioned(status string) bool {
	return strings.HasPrefix(status, "Decommissioned")
}

// IsRetired reports whether status belongs to the retired family.
func IsRetired(status string) bool {
	return strings.HasPrefix(status, "Retired")
}

// IsInUse reports whether status belongs to the in-use family.
func IsInUse(status string) bool {
	return strings.HasPrefix(status, "In Use")
}

// IsAwaiting reports whether status belongs to the awaiting family.
func IsAwaiting(status string) bool {
	return strings.HasPrefix(status, "Awaiting")
}
