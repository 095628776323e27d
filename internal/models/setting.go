package models

import "time"

// Setting is a process-wide key/value pair (organization name, label
// defaults, log retention). Writes are upserts; reads of absent keys
// resolve to the empty string.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:key;uniqueIndex;size:100;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string { return "settings" }

// Setting keys used by the label renderer and housekeeping.
const (
	SettingOrganization          = "organization"
	SettingLabelShowAssignedTo   = "label_show_assigned_to"
	SettingLabelShowModel        = "label_show_model"
	SettingLabelShowSerialNumber = "label_show_serial_number"
	SettingLogRetentionDays      = "log_retention_days"
)
