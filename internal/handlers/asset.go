package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sbennell/Asset-System/internal/services"
	"github.com/sbennell/Asset-System/pkg/response"
	"gorm.io/gorm"
)

type AssetHandler struct {
	assetService *services.AssetService
	bulkService  *services.BulkUpdateService
}

func NewAssetHandler(db *gorm.DB) *AssetHandler {
	return &AssetHandler{
		assetService: services.NewAssetService(db),
		bulkService:  services.NewBulkUpdateService(db),
	}
}

// List returns paginated, filtered assets
// GET /api/assets
func (h *AssetHandler) List(c *gin.Context) {
	var req services.AssetListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.assetService.List(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, resp)
}

// GetByID returns a single asset with its lookups resolved
// GET /api/assets/:id
func (h *AssetHandler) GetByID(c *gin.Context) {
	asset, err := h.assetService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, asset)
}

// Create creates a new asset
// POST /api/assets
func (h *AssetHandler) Create(c *gin.Context) {
	var req services.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	asset, err := h.assetService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, asset)
}

// Update applies a sparse update to an asset
// PUT /api/assets/:id
func (h *AssetHandler) Update(c *gin.Context) {
	var req services.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	asset, err := h.assetService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, asset)
}

// Delete removes an asset
// DELETE /api/assets/:id
func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.assetService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}

// BulkUpdate applies one change set to many assets. Per-asset failures are
// reported in the result body, not as an HTTP error.
// POST /api/assets/bulk-update
func (h *AssetHandler) BulkUpdate(c *gin.Context) {
	var req services.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.bulkService.BulkUpdate(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, result)
}
