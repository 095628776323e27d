package services

import (
	"github.com/sbennell/Asset-System/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	TotalAssets    int64 `json:"total_assets"`
	InUse          int64 `json:"in_use"`
	Awaiting       int64 `json:"awaiting"`
	Decommissioned int64 `json:"decommissioned"`
	Retired        int64 `json:"retired"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type ConditionCount struct {
	Condition string `json:"condition"`
	Count     int64  `json:"count"`
}

type CategoryCount struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Count        int64  `json:"count"`
}

type DashboardResponse struct {
	Stats           DashboardStats   `json:"stats"`
	StatusCounts    []StatusCount    `json:"status_counts"`
	ConditionCounts []ConditionCount `json:"condition_counts"`
	TopCategories   []CategoryCount  `json:"top_categories"`
	RecentAssets    []models.Asset   `json:"recent_assets"`
}

// GetStats aggregates the inventory overview: status family totals, raw
// status and condition breakdowns, the busiest categories and the latest
// additions.
func (s *DashboardService) GetStats() (*DashboardResponse, error) {
	var statusCounts []StatusCount
	if err := s.db.Model(&models.Asset{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Order("count DESC").
		Scan(&statusCounts).Error; err != nil {
		return nil, err
	}

	var stats DashboardStats
	for _, sc := range statusCounts {
		stats.TotalAssets += sc.Count
		switch {
		case models.IsDecommissioned(sc.Status):
			stats.Decommissioned += sc.Count
		case models.IsRetired(sc.Status):
			stats.Retired += sc.Count
		case models.IsInUse(sc.Status):
			stats.InUse += sc.Count
		case models.IsAwaiting(sc.Status):
			stats.Awaiting += sc.Count
		}
	}

	var conditionCounts []ConditionCount
	if err := s.db.Model(&models.Asset{}).
		Select("`condition`, COUNT(*) as count").
		Where("`condition` <> ''").
		Group("`condition`").
		Order("count DESC").
		Scan(&conditionCounts).Error; err != nil {
		return nil, err
	}

	var topCategories []CategoryCount
	if err := s.db.Model(&models.Asset{}).
		Select("assets.category_id, categories.name as category_name, COUNT(*) as count").
		Joins("JOIN categories ON categories.id = assets.category_id").
		Where("assets.category_id IS NOT NULL").
		Group("assets.category_id, categories.name").
		Order("count DESC").
		Limit(5).
		Scan(&topCategories).Error; err != nil {
		return nil, err
	}

	var recent []models.Asset
	if err := s.db.Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Stats:           stats,
		StatusCounts:    statusCounts,
		ConditionCounts: conditionCounts,
		TopCategories:   topCategories,
		RecentAssets:    recent,
	}, nil
}
