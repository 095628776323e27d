package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sbennell/Asset-System/internal/services"
	"github.com/sbennell/Asset-System/pkg/response"
	"gorm.io/gorm"
)

type SettingHandler struct {
	settingService *services.SettingService
}

func NewSettingHandler(db *gorm.DB) *SettingHandler {
	return &SettingHandler{
		settingService: services.NewSettingService(db),
	}
}

// GET /api/settings/:key
// Absent keys resolve to an empty value rather than 404 so the client can
// treat every setting as optional.
func (h *SettingHandler) Get(c *gin.Context) {
	key := c.Param("key")
	value, err := h.settingService.Get(key)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"key": key, "value": value})
}

type updateSettingRequest struct {
	Value *string `json:"value" binding:"required"`
}

// PUT /api/settings/:key
// The value field must be present; an empty string is a legal value.
func (h *SettingHandler) Set(c *gin.Context) {
	var req updateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
		response.BadRequest(c, "value is required")
		return
	}

	key := c.Param("key")
	if err := h.settingService.Set(key, *req.Value); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"key": key, "value": *req.Value})
}
