package services

import (
	"errors"
	"strings"

	"github.com/sbennell/Asset-System/internal/models"
	"gorm.io/gorm"
)

// LookupService implements CRUD over the asset reference tables (categories,
// manufacturers, suppliers, locations). All four share the same rules: names
// are unique, and a row referenced by assets cannot be deleted.
type LookupService struct {
	db *gorm.DB
}

func NewLookupService(db *gorm.DB) *LookupService {
	return &LookupService{db: db}
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateManufacturerRequest struct {
	Name        string `json:"name"`
	Website     string `json:"website"`
	SupportURL  string `json:"support_url"`
	ContactInfo string `json:"contact_info"`
}

type UpdateManufacturerRequest struct {
	Name        *string `json:"name"`
	Website     *string `json:"website"`
	SupportURL  *string `json:"support_url"`
	ContactInfo *string `json:"contact_info"`
}

type CreateSupplierRequest struct {
	Name        string `json:"name"`
	Website     string `json:"website"`
	ContactInfo string `json:"contact_info"`
	AccountNum  string `json:"account_num"`
}

type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	Website     *string `json:"website"`
	ContactInfo *string `json:"contact_info"`
	AccountNum  *string `json:"account_num"`
}

type CreateLocationRequest struct {
	Name     string `json:"name"`
	Building string `json:"building"`
	Floor    string `json:"floor"`
	Room     string `json:"room"`
	Address  string `json:"address"`
}

type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	Building *string `json:"building"`
	Floor    *string `json:"floor"`
	Room     *string `json:"room"`
	Address  *string `json:"address"`
}

type CategoryListItem struct {
	models.Category
	AssetCount int64 `json:"asset_count"`
}

type ManufacturerListItem struct {
	models.Manufacturer
	AssetCount int64 `json:"asset_count"`
}

type SupplierListItem struct {
	models.Supplier
	AssetCount int64 `json:"asset_count"`
}

type LocationListItem struct {
	models.Location
	AssetCount int64 `json:"asset_count"`
}

// assetCounts returns the number of assets referencing each lookup row via
// the given foreign-key column.
func (s *LookupService) assetCounts(column string) (map[string]int64, error) {
	type refCount struct {
		RefID string
		N     int64
	}
	var rows []refCount
	if err := s.db.Model(&models.Asset{}).
		Select(column+" AS ref_id, COUNT(*) AS n").
		Where(column+" IS NOT NULL").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.RefID] = r.N
	}
	return counts, nil
}

// nameTaken reports whether another row of the given model already uses name.
// The match is exact and case-sensitive.
func (s *LookupService) nameTaken(model interface{}, name, excludeID string) (bool, error) {
	query := s.db.Model(model).Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// refCountFor counts assets referencing id through the given column.
func (s *LookupService) refCountFor(column, id string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Asset{}).Where(column+" = ?", id).Count(&count).Error
	return count, err
}

// --- Categories ---

func (s *LookupService) ListCategories() ([]CategoryListItem, error) {
	var cats []models.Category
	if err := s.db.Order("name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}

	counts, err := s.assetCounts("category_id")
	if err != nil {
		return nil, err
	}

	items := make([]CategoryListItem, len(cats))
	for i, c := range cats {
		items[i] = CategoryListItem{Category: c, AssetCount: counts[c.ID]}
	}
	return items, nil
}

func (s *LookupService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("Name is required")
	}

	taken, err := s.nameTaken(&models.Category{}, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewDuplicateError("Category already exists")
	}

	cat := models.Category{Name: name, Description: req.Description}
	if err := s.db.Create(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewDuplicateError("Category already exists")
		}
		return nil, err
	}
	return &cat, nil
}

func (s *LookupService) UpdateCategory(id string, req *UpdateCategoryRequest) (*models.Category, error) {
	var cat models.Category
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Category not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("Name is required")
		}
		taken, err := s.nameTaken(&models.Category{}, name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, NewDuplicateError("Category name already exists")
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(&cat).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, NewDuplicateError("Category name already exists")
			}
			return nil, err
		}
	}
	return &cat, nil
}

func (s *LookupService) DeleteCategory(id string) error {
	refs, err := s.refCountFor("category_id", id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return NewReferencedError("Cannot delete category with assets")
	}

	result := s.db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return NewReferencedError("Cannot delete category with assets")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("Category not found")
	}
	return nil
}

// --- Manufacturers ---

func (s *LookupService) ListManufacturers() ([]ManufacturerListItem, error) {
	var rows []models.Manufacturer
	if err := s.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	counts, err := s.assetCounts("manufacturer_id")
	if err != nil {
		return nil, err
	}

	items := make([]ManufacturerListItem, len(rows))
	for i, m := range rows {
		items[i] = ManufacturerListItem{Manufacturer: m, AssetCount: counts[m.ID]}
	}
	return items, nil
}

func (s *LookupService) CreateManufacturer(req *CreateManufacturerRequest) (*models.Manufacturer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("Name is required")
	}

	taken, err := s.nameTaken(&models.Manufacturer{}, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewDuplicateError("Manufacturer already exists")
	}

	m := models.Manufacturer{
		Name:        name,
		Website:     req.Website,
		SupportURL:  req.SupportURL,
		ContactInfo: req.ContactInfo,
	}
	if err := s.db.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewDuplicateError("Manufacturer already exists")
		}
		return nil, err
	}
	return &m, nil
}

func (s *LookupService) UpdateManufacturer(id string, req *UpdateManufacturerRequest) (*models.Manufacturer, error) {
	var m models.Manufacturer
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Manufacturer not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("Name is required")
		}
		taken, err := s.nameTaken(&models.Manufacturer{}, name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, NewDuplicateError("Manufacturer name already exists")
		}
		updates["name"] = name
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.SupportURL != nil {
		updates["support_url"] = *req.SupportURL
	}
	if req.ContactInfo != nil {
		updates["contact_info"] = *req.ContactInfo
	}

	if len(updates) > 0 {
		if err := s.db.Model(&m).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, NewDuplicateError("Manufacturer name already exists")
			}
			return nil, err
		}
	}
	return &m, nil
}

func (s *LookupService) DeleteManufacturer(id string) error {
	refs, err := s.refCountFor("manufacturer_id", id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return NewReferencedError("Cannot delete manufacturer with assets")
	}

	result := s.db.Delete(&models.Manufacturer{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return NewReferencedError("Cannot delete manufacturer with assets")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("Manufacturer not found")
	}
	return nil
}

// --- Suppliers ---

func (s *LookupService) ListSuppliers() ([]SupplierListItem, error) {
	var rows []models.Supplier
	if err := s.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	counts, err := s.assetCounts("supplier_id")
	if err != nil {
		return nil, err
	}

	items := make([]SupplierListItem, len(rows))
	for i, sup := range rows {
		items[i] = SupplierListItem{Supplier: sup, AssetCount: counts[sup.ID]}
	}
	return items, nil
}

func (s *LookupService) CreateSupplier(req *CreateSupplierRequest) (*models.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("Name is required")
	}

	taken, err := s.nameTaken(&models.Supplier{}, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewDuplicateError("Supplier already exists")
	}

	sup := models.Supplier{
		Name:        name,
		Website:     req.Website,
		ContactInfo: req.ContactInfo,
		AccountNum:  req.AccountNum,
	}
	if err := s.db.Create(&sup).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewDuplicateError("Supplier already exists")
		}
		return nil, err
	}
	return &sup, nil
}

func (s *LookupService) UpdateSupplier(id string, req *UpdateSupplierRequest) (*models.Supplier, error) {
	var sup models.Supplier
	if err := s.db.First(&sup, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Supplier not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("Name is required")
		}
		taken, err := s.nameTaken(&models.Supplier{}, name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, NewDuplicateError("Supplier name already exists")
		}
		updates["name"] = name
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.ContactInfo != nil {
		updates["contact_info"] = *req.ContactInfo
	}
	if req.AccountNum != nil {
		updates["account_num"] = *req.AccountNum
	}

	if len(updates) > 0 {
		if err := s.db.Model(&sup).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, NewDuplicateError("Supplier name already exists")
			}
			return nil, err
		}
	}
	return &sup, nil
}

func (s *LookupService) DeleteSupplier(id string) error {
	refs, err := s.refCountFor("supplier_id", id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return NewReferencedError("Cannot delete supplier with assets")
	}

	result := s.db.Delete(&models.Supplier{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return NewReferencedError("Cannot delete supplier with assets")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("Supplier not found")
	}
	return nil
}

// --- Locations ---

func (s *LookupService) ListLocations() ([]LocationListItem, error) {
	var rows []models.Location
	if err := s.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	counts, err := s.assetCounts("location_id")
	if err != nil {
		return nil, err
	}

	items := make([]LocationListItem, len(rows))
	for i, l := range rows {
		items[i] = LocationListItem{Location: l, AssetCount: counts[l.ID]}
	}
	return items, nil
}

func (s *LookupService) CreateLocation(req *CreateLocationRequest) (*models.Location, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("Name is required")
	}

	taken, err := s.nameTaken(&models.Location{}, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewDuplicateError("Location already exists")
	}

	loc := models.Location{
		Name:     name,
		Building: req.Building,
		Floor:    req.Floor,
		Room:     req.Room,
		Address:  req.Address,
	}
	if err := s.db.Create(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewDuplicateError("Location already exists")
		}
		return nil, err
	}
	return &loc, nil
}

func (s *LookupService) UpdateLocation(id string, req *UpdateLocationRequest) (*models.Location, error) {
	var loc models.Location
	if err := s.db.First(&loc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Location not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("Name is required")
		}
		taken, err := s.nameTaken(&models.Location{}, name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, NewDuplicateError("Location name already exists")
		}
		updates["name"] = name
	}
	if req.Building != nil {
		updates["building"] = *req.Building
	}
	if req.Floor != nil {
		updates["floor"] = *req.Floor
	}
	if req.Room != nil {
		updates["room"] = *req.Room
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	if len(updates) > 0 {
		if err := s.db.Model(&loc).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, NewDuplicateError("Location name already exists")
			}
			return nil, err
		}
	}
	return &loc, nil
}

func (s *LookupService) DeleteLocation(id string) error {
	refs, err := s.refCountFor("location_id", id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return NewReferencedError("Cannot delete location with assets")
	}

	result := s.db.Delete(&models.Location{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return NewReferencedError("Cannot delete location with assets")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("Location not found")
	}
	return nil
}
