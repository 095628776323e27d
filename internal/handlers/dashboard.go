package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sbennell/Asset-System/internal/services"
	"github.com/sbennell/Asset-System/pkg/response"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: services.NewDashboardService(db),
	}
}

// GetStats returns the inventory overview
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, stats)
}
