package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sbennell/Asset-System/internal/services"
	"github.com/sbennell/Asset-System/pkg/response"
	"gorm.io/gorm"
)

type ActivityLogHandler struct {
	logService *services.ActivityLogService
}

func NewActivityLogHandler(db *gorm.DB) *ActivityLogHandler {
	return &ActivityLogHandler{
		logService: services.NewActivityLogService(db),
	}
}

// List returns paginated activity log entries
// GET /api/activity-logs
func (h *ActivityLogHandler) List(c *gin.Context) {
	var req services.ActivityLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.logService.List(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, resp)
}

// GetModules returns the distinct modules present in the log
// GET /api/activity-logs/modules
func (h *ActivityLogHandler) GetModules(c *gin.Context) {
	modules, err := h.logService.GetModules()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, modules)
}

// GetRetention returns the current retention window in days
// GET /api/activity-logs/retention
func (h *ActivityLogHandler) GetRetention(c *gin.Context) {
	response.Success(c, gin.H{"retention_days": h.logService.GetRetentionDays()})
}

type updateRetentionRequest struct {
	RetentionDays *int `json:"retention_days" binding:"required"`
}

// SetRetention updates the retention window
// PUT /api/activity-logs/retention
func (h *ActivityLogHandler) SetRetention(c *gin.Context) {
	var req updateRetentionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RetentionDays == nil {
		response.BadRequest(c, "retention_days is required")
		return
	}

	if err := h.logService.SetRetentionDays(*req.RetentionDays); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"retention_days": *req.RetentionDays})
}

// Cleanup runs the retention sweep immediately
// POST /api/activity-logs/cleanup
func (h *ActivityLogHandler) Cleanup(c *gin.Context) {
	deleted, err := h.logService.CleanupOldLogs(h.logService.GetRetentionDays())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": deleted})
}
