package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sbennell/Asset-System/internal/services"
	"github.com/sbennell/Asset-System/pkg/response"
	"gorm.io/gorm"
)

type SavedFilterHandler struct {
	filterService *services.SavedFilterService
}

func NewSavedFilterHandler(db *gorm.DB) *SavedFilterHandler {
	return &SavedFilterHandler{
		filterService: services.NewSavedFilterService(db),
	}
}

// GET /api/filters
func (h *SavedFilterHandler) List(c *gin.Context) {
	filters, err := h.filterService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, filters)
}

// POST /api/filters
func (h *SavedFilterHandler) Create(c *gin.Context) {
	var req services.CreateSavedFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filter, err := h.filterService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, filter)
}

// DELETE /api/filters/:id
func (h *SavedFilterHandler) Delete(c *gin.Context) {
	if err := h.filterService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}
