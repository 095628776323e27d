package services

import (
	"errors"
	"fmt"

	"github.com/sbennell/Asset-System/internal/models"
	"gorm.io/gorm"
)

// BulkUpdateService applies a sparse change set to many assets at once.
// Each asset is updated independently: one bad id records an error entry and
// never aborts or rolls back its siblings. There is deliberately no
// cross-asset transaction, so updates applied before a request is aborted
// stay applied.
type BulkUpdateService struct {
	db *gorm.DB
}

func NewBulkUpdateService(db *gorm.DB) *BulkUpdateService {
	return &BulkUpdateService{db: db}
}

// BulkChangeSet is the sparse set of field changes. A nil field means
// "leave unchanged"; a present field is applied as-is, including present
// empty strings (which clear the column).
type BulkChangeSet struct {
	Status           *string `json:"status"`
	Condition        *string `json:"condition"`
	CategoryID       *string `json:"category_id"`
	LocationID       *string `json:"location_id"`
	DecommissionDate *string `json:"decommission_date"`
	Comments         *string `json:"comments"`
}

// IsEmpty reports whether no field is present.
func (c *BulkChangeSet) IsEmpty() bool {
	return c.Status == nil &&
		c.Condition == nil &&
		c.CategoryID == nil &&
		c.LocationID == nil &&
		c.DecommissionDate == nil &&
		c.Comments == nil
}

type BulkUpdateRequest struct {
	IDs    []string      `json:"ids"`
	Fields BulkChangeSet `json:"fields"`
}

// BulkUpdateError is one failed id with its reason. Entries appear in the
// input order of the failing ids.
type BulkUpdateError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type BulkUpdateResult struct {
	Updated int               `json:"updated"`
	Failed  int               `json:"failed"`
	Errors  []BulkUpdateError `json:"errors"`
}

// BulkUpdate applies the change set to every asset in ids, in order.
// A structurally invalid request (no ids, or no present fields) fails as a
// whole with a validation error and performs zero updates. Anything that
// goes wrong for an individual id becomes an error entry in the result.
func (s *BulkUpdateService) BulkUpdate(req *BulkUpdateRequest) (*BulkUpdateResult, error) {
	if len(req.IDs) == 0 {
		return nil, NewValidationError("At least one asset id is required")
	}
	if req.Fields.IsEmpty() {
		return nil, NewValidationError("At least one field is required")
	}

	// Resolve the change set once; a malformed value fails the whole
	// request before any asset is touched.
	updates, err := s.resolveChangeSet(&req.Fields)
	if err != nil {
		return nil, err
	}

	result := &BulkUpdateResult{Errors: []BulkUpdateError{}}
	for _, id := range req.IDs {
		if err := s.applyToAsset(id, updates); err != nil {
			result.Errors = append(result.Errors, BulkUpdateError{ID: id, Message: err.Error()})
			continue
		}
		result.Updated++
	}
	result.Failed = len(req.IDs) - result.Updated

	return result, nil
}

// resolveChangeSet validates the present fields and converts them into a
// column update map shared by every per-id attempt.
func (s *BulkUpdateService) resolveChangeSet(fields *BulkChangeSet) (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if fields.Status != nil {
		if !models.IsValidStatus(*fields.Status) {
			return nil, NewValidationError(fmt.Sprintf("invalid status %q", *fields.Status))
		}
		updates["status"] = *fields.Status
	}
	if fields.Condition != nil {
		if !models.IsValidCondition(*fields.Condition) {
			return nil, NewValidationError(fmt.Sprintf("invalid condition %q", *fields.Condition))
		}
		updates["condition"] = *fields.Condition
	}
	if fields.CategoryID != nil {
		if *fields.CategoryID != "" {
			if err := checkLookupRef(s.db, &models.Category{}, *fields.CategoryID, "category"); err != nil {
				return nil, err
			}
			updates["category_id"] = *fields.CategoryID
		} else {
			updates["category_id"] = nil
		}
	}
	if fields.LocationID != nil {
		if *fields.LocationID != "" {
			if err := checkLookupRef(s.db, &models.Location{}, *fields.LocationID, "location"); err != nil {
				return nil, err
			}
			updates["location_id"] = *fields.LocationID
		} else {
			updates["location_id"] = nil
		}
	}
	if fields.DecommissionDate != nil {
		if *fields.DecommissionDate != "" {
			date, err := parseDate(*fields.DecommissionDate)
			if err != nil {
				return nil, NewValidationError(err.Error())
			}
			updates["decommission_date"] = date
		} else {
			updates["decommission_date"] = nil
		}
	}
	if fields.Comments != nil {
		updates["comments"] = *fields.Comments
	}

	return updates, nil
}

// applyToAsset updates one asset. Failures are returned, never panicked, so
// the caller can record them without disturbing sibling updates.
func (s *BulkUpdateService) applyToAsset(id string, updates map[string]interface{}) error {
	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("asset not found")
		}
		return err
	}
	return s.db.Model(&asset).Updates(updates).Error
}
