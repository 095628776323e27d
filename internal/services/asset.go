package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sbennell/Asset-System/internal/models"
	"gorm.io/gorm"
)

// AssetService implements CRUD over assets.
type AssetService struct {
	db *gorm.DB
}

func NewAssetService(db *gorm.DB) *AssetService {
	return &AssetService{db: db}
}

type AssetListRequest struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Status     string `form:"status"`
	Condition  string `form:"condition"`
	CategoryID string `form:"category_id"`
	LocationID string `form:"location_id"`
	Search     string `form:"search"`
}

type AssetListResponse struct {
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Items    []models.Asset `json:"items"`
}

type CreateAssetRequest struct {
	ItemNumber       string  `json:"item_number"`
	Status           string  `json:"status"`
	Condition        string  `json:"condition"`
	Model            string  `json:"model"`
	SerialNumber     string  `json:"serial_number"`
	AssignedTo       string  `json:"assigned_to"`
	CategoryID       *string `json:"category_id"`
	LocationID       *string `json:"location_id"`
	ManufacturerID   *string `json:"manufacturer_id"`
	SupplierID       *string `json:"supplier_id"`
	DecommissionDate *string `json:"decommission_date"`
	Comments         string  `json:"comments"`
}

type UpdateAssetRequest struct {
	ItemNumber       *string `json:"item_number"`
	Status           *string `json:"status"`
	Condition        *string `json:"condition"`
	Model            *string `json:"model"`
	SerialNumber     *string `json:"serial_number"`
	AssignedTo       *string `json:"assigned_to"`
	CategoryID       *string `json:"category_id"`
	LocationID       *string `json:"location_id"`
	ManufacturerID   *string `json:"manufacturer_id"`
	SupplierID       *string `json:"supplier_id"`
	DecommissionDate *string `json:"decommission_date"`
	Comments         *string `json:"comments"`
}

// parseDate parses a YYYY-MM-DD date string.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// lookupRowExists reports whether a row of the given lookup model exists.
func lookupRowExists(db *gorm.DB, model interface{}, id string) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// checkLookupRef validates a foreign-key value against its lookup table,
// returning a validation error naming the entity when the row is missing.
func checkLookupRef(db *gorm.DB, model interface{}, id, entity string) error {
	exists, err := lookupRowExists(db, model, id)
	if err != nil {
		return err
	}
	if !exists {
		return NewValidationError(fmt.Sprintf("%s %s does not exist", entity, id))
	}
	return nil
}

func (s *AssetService) List(req *AssetListRequest) (*AssetListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var assets []models.Asset
	var total int64

	query := s.db.Model(&models.Asset{})

	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.Condition != "" {
		query = query.Where("`condition` = ?", req.Condition)
	}
	if req.CategoryID != "" {
		query = query.Where("category_id = ?", req.CategoryID)
	}
	if req.LocationID != "" {
		query = query.Where("location_id = ?", req.LocationID)
	}
	if req.Search != "" {
		like := "%" + req.Search + "%"
		query = query.Where(
			"item_number LIKE ? OR serial_number LIKE ? OR assigned_to LIKE ? OR model LIKE ?",
			like, like, like, like,
		)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.
		Preload("Category").
		Preload("Location").
		Preload("Manufacturer").
		Preload("Supplier").
		Offset(offset).Limit(req.PageSize).
		Order("item_number ASC").
		Find(&assets).Error; err != nil {
		return nil, err
	}

	return &AssetListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    assets,
	}, nil
}

func (s *AssetService) GetByID(id string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.
		Preload("Category").
		Preload("Location").
		Preload("Manufacturer").
		Preload("Supplier").
		First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Asset not found")
		}
		return nil, err
	}
	return &asset, nil
}

func (s *AssetService) Create(req *CreateAssetRequest) (*models.Asset, error) {
	itemNumber := strings.TrimSpace(req.ItemNumber)
	if itemNumber == "" {
		return nil, NewValidationError("Item number is required")
	}
	if req.Status == "" {
		return nil, NewValidationError("Status is required")
	}
	if !models.IsValidStatus(req.Status) {
		return nil, NewValidationError(fmt.Sprintf("invalid status %q", req.Status))
	}
	if req.Condition != "" && !models.IsValidCondition(req.Condition) {
		return nil, NewValidationError(fmt.Sprintf("invalid condition %q", req.Condition))
	}

	if err := s.checkRefs(req.CategoryID, req.LocationID, req.ManufacturerID, req.SupplierID); err != nil {
		return nil, err
	}

	var taken int64
	if err := s.db.Model(&models.Asset{}).Where("item_number = ?", itemNumber).Count(&taken).Error; err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, NewDuplicateError("Item number already exists")
	}

	asset := models.Asset{
		ItemNumber:     itemNumber,
		Status:         req.Status,
		Condition:      req.Condition,
		Model:          req.Model,
		SerialNumber:   req.SerialNumber,
		AssignedTo:     req.AssignedTo,
		CategoryID:     req.CategoryID,
		LocationID:     req.LocationID,
		ManufacturerID: req.ManufacturerID,
		SupplierID:     req.SupplierID,
		Comments:       req.Comments,
	}
	if req.DecommissionDate != nil && *req.DecommissionDate != "" {
		date, err := parseDate(*req.DecommissionDate)
		if err != nil {
			return nil, NewValidationError(err.Error())
		}
		asset.DecommissionDate = &date
	}

	if err := s.db.Create(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewDuplicateError("Item number already exists")
		}
		return nil, err
	}
	return &asset, nil
}

func (s *AssetService) Update(id string, req *UpdateAssetRequest) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Asset not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.ItemNumber != nil {
		itemNumber := strings.TrimSpace(*req.ItemNumber)
		if itemNumber == "" {
			return nil, NewValidationError("Item number is required")
		}
		var taken int64
		if err := s.db.Model(&models.Asset{}).
			Where("item_number = ? AND id != ?", itemNumber, id).
			Count(&taken).Error; err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, NewDuplicateError("Item number already exists")
		}
		updates["item_number"] = itemNumber
	}
	if req.Status != nil {
		if !models.IsValidStatus(*req.Status) {
			return nil, NewValidationError(fmt.Sprintf("invalid status %q", *req.Status))
		}
		updates["status"] = *req.Status
	}
	if req.Condition != nil {
		if *req.Condition != "" && !models.IsValidCondition(*req.Condition) {
			return nil, NewValidationError(fmt.Sprintf("invalid condition %q", *req.Condition))
		}
		updates["condition"] = *req.Condition
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.SerialNumber != nil {
		updates["serial_number"] = *req.SerialNumber
	}
	if req.AssignedTo != nil {
		updates["assigned_to"] = *req.AssignedTo
	}
	if req.Comments != nil {
		updates["comments"] = *req.Comments
	}
	if req.CategoryID != nil {
		if *req.CategoryID != "" {
			if err := checkLookupRef(s.db, &models.Category{}, *req.CategoryID, "category"); err != nil {
				return nil, err
			}
			updates["category_id"] = *req.CategoryID
		} else {
			updates["category_id"] = nil
		}
	}
	if req.LocationID != nil {
		if *req.LocationID != "" {
			if err := checkLookupRef(s.db, &models.Location{}, *req.LocationID, "location"); err != nil {
				return nil, err
			}
			updates["location_id"] = *req.LocationID
		} else {
			updates["location_id"] = nil
		}
	}
	if req.ManufacturerID != nil {
		if *req.ManufacturerID != "" {
			if err := checkLookupRef(s.db, &models.Manufacturer{}, *req.ManufacturerID, "manufacturer"); err != nil {
				return nil, err
			}
			updates["manufacturer_id"] = *req.ManufacturerID
		} else {
			updates["manufacturer_id"] = nil
		}
	}
	if req.SupplierID != nil {
		if *req.SupplierID != "" {
			if err := checkLookupRef(s.db, &models.Supplier{}, *req.SupplierID, "supplier"); err != nil {
				return nil, err
			}
			updates["supplier_id"] = *req.SupplierID
		} else {
			updates["supplier_id"] = nil
		}
	}
	if req.DecommissionDate != nil {
		if *req.DecommissionDate != "" {
			date, err := parseDate(*req.DecommissionDate)
			if err != nil {
				return nil, NewValidationError(err.Error())
			}
			updates["decommission_date"] = date
		} else {
			updates["decommission_date"] = nil
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(&asset).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, NewDuplicateError("Item number already exists")
			}
			return nil, err
		}
	}

	s.db.First(&asset, "id = ?", id)
	return &asset, nil
}

func (s *AssetService) Delete(id string) error {
	result := s.db.Delete(&models.Asset{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("Asset not found")
	}
	return nil
}

func (s *AssetService) checkRefs(categoryID, locationID, manufacturerID, supplierID *string) error {
	if categoryID != nil && *categoryID != "" {
		if err := checkLookupRef(s.db, &models.Category{}, *categoryID, "category"); err != nil {
			return err
		}
	}
	if locationID != nil && *locationID != "" {
		if err := checkLookupRef(s.db, &models.Location{}, *locationID, "location"); err != nil {
			return err
		}
	}
	if manufacturerID != nil && *manufacturerID != "" {
		if err := checkLookupRef(s.db, &models.Manufacturer{}, *manufacturerID, "manufacturer"); err != nil {
			return err
		}
	}
	if supplierID != nil && *supplierID != "" {
		if err := checkLookupRef(s.db, &models.Supplier{}, *supplierID, "supplier"); err != nil {
			return err
		}
	}
	return nil
}
