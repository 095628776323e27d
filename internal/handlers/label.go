package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sbennell/Asset-System/internal/config"
	"github.com/sbennell/Asset-System/internal/services"
	"github.com/sbennell/Asset-System/pkg/response"
	"gorm.io/gorm"
)

type LabelHandler struct {
	labelService *services.LabelService
}

func NewLabelHandler(db *gorm.DB, cfg *config.LabelConfig) *LabelHandler {
	return &LabelHandler{
		labelService: services.NewLabelService(db, cfg),
	}
}

// Preview returns the label QR code as a PNG
// GET /api/assets/:id/label/preview
func (h *LabelHandler) Preview(c *gin.Context) {
	png, err := h.labelService.PreviewPNG(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Binary(c, "image/png", png)
}

// Download returns the rendered label as a PDF attachment
// GET /api/assets/:id/label/download
func (h *LabelHandler) Download(c *gin.Context) {
	var ov services.LabelOverrides
	if err := c.ShouldBindQuery(&ov); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	copies, _ := strconv.Atoi(c.DefaultQuery("copies", "1"))

	pdf, err := h.labelService.BuildPDF(c.Param("id"), copies, ov)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=label-%s.pdf", c.Param("id")))
	response.Binary(c, "application/pdf", pdf)
}

type printLabelRequest struct {
	Copies    int                     `json:"copies"`
	Overrides services.LabelOverrides `json:"overrides"`
}

// Print spools a label print job
// POST /api/assets/:id/label/print
func (h *LabelHandler) Print(c *gin.Context) {
	var req printLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.labelService.PrintLabel(c.Param("id"), req.Copies, req.Overrides)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, result)
}

// GetSettings returns the persisted label display defaults
// GET /api/label-settings
func (h *LabelHandler) GetSettings(c *gin.Context) {
	response.Success(c, h.labelService.Defaults())
}

// UpdateSettings persists new label display defaults
// PUT /api/label-settings
func (h *LabelHandler) UpdateSettings(c *gin.Context) {
	var ov services.LabelOverrides
	if err := c.ShouldBindJSON(&ov); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.labelService.UpdateDefaults(&ov)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, updated)
}
