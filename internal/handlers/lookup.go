package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sbennell/Asset-System/internal/services"
	"github.com/sbennell/Asset-System/pkg/response"
	"gorm.io/gorm"
)

// LookupHandler serves the four lookup tables: categories, manufacturers,
// suppliers and locations.
type LookupHandler struct {
	lookupService *services.LookupService
}

func NewLookupHandler(db *gorm.DB) *LookupHandler {
	return &LookupHandler{
		lookupService: services.NewLookupService(db),
	}
}

// GET /api/categories
func (h *LookupHandler) ListCategories(c *gin.Context) {
	items, err := h.lookupService.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, items)
}

// POST /api/categories
func (h *LookupHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := h.lookupService.CreateCategory(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, category)
}

// PUT /api/categories/:id
func (h *LookupHandler) UpdateCategory(c *gin.Context) {
	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := h.lookupService.UpdateCategory(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, category)
}

// DELETE /api/categories/:id
func (h *LookupHandler) DeleteCategory(c *gin.Context) {
	if err := h.lookupService.DeleteCategory(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}

// GET /api/manufacturers
func (h *LookupHandler) ListManufacturers(c *gin.Context) {
	items, err := h.lookupService.ListManufacturers()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, items)
}

// POST /api/manufacturers
func (h *LookupHandler) CreateManufacturer(c *gin.Context) {
	var req services.CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	manufacturer, err := h.lookupService.CreateManufacturer(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, manufacturer)
}

// PUT /api/manufacturers/:id
func (h *LookupHandler) UpdateManufacturer(c *gin.Context) {
	var req services.UpdateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	manufacturer, err := h.lookupService.UpdateManufacturer(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, manufacturer)
}

// DELETE /api/manufacturers/:id
func (h *LookupHandler) DeleteManufacturer(c *gin.Context) {
	if err := h.lookupService.DeleteManufacturer(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}

// GET /api/suppliers
func (h *LookupHandler) ListSuppliers(c *gin.Context) {
	items, err := h.lookupService.ListSuppliers()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, items)
}

// POST /api/suppliers
func (h *LookupHandler) CreateSupplier(c *gin.Context) {
	var req services.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	supplier, err := h.lookupService.CreateSupplier(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, supplier)
}

// PUT /api/suppliers/:id
func (h *LookupHandler) UpdateSupplier(c *gin.Context) {
	var req services.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	supplier, err := h.lookupService.UpdateSupplier(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, supplier)
}

// DELETE /api/suppliers/:id
func (h *LookupHandler) DeleteSupplier(c *gin.Context) {
	if err := h.lookupService.DeleteSupplier(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}

// GET /api/locations
func (h *LookupHandler) ListLocations(c *gin.Context) {
	items, err := h.lookupService.ListLocations()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, items)
}

// POST /api/locations
func (h *LookupHandler) CreateLocation(c *gin.Context) {
	var req services.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	location, err := h.lookupService.CreateLocation(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, location)
}

// PUT /api/locations/:id
func (h *LookupHandler) UpdateLocation(c *gin.Context) {
	var req services.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	location, err := h.lookupService.UpdateLocation(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, location)
}

// DELETE /api/locations/:id
func (h *LookupHandler) DeleteLocation(c *gin.Context) {
	if err := h.lookupService.DeleteLocation(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}
