package services

import (
	"encoding/json"
	"testing"

	"github.com/sbennell/Asset-System/internal/models"
)

func TestNormalizeConfig(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"empty", "", ""},
		{"pre-serialized string", `"{\"status\":\"In Use\"}"`, `{"status":"In Use"}`},
		{"structured object", `{"status":"In Use"}`, `{"status":"In Use"}`},
		{"structured array", `[{"field":"name","dir":"asc"}]`, `[{"field":"name","dir":"asc"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeConfig(json.RawMessage(tt.raw))
			if got != tt.expected {
				t.Errorf("normalizeConfig(%s) = %q, expected %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestCreateSavedFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedFilterService(db)

	filter, err := svc.Create(&CreateSavedFilterRequest{
		Name:         "Loaned laptops",
		FilterConfig: json.RawMessage(`{"status":"In Use - Loaned to student"}`),
		SortConfig:   json.RawMessage(`[{"field":"assigned_to","dir":"asc"}]`),
		Description:  "Laptops currently out on loan",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if filter.ID == "" {
		t.Error("created filter should have an id")
	}
	if filter.FilterConfig != `{"status":"In Use - Loaned to student"}` {
		t.Errorf("FilterConfig = %q", filter.FilterConfig)
	}
	if filter.SortConfig == nil {
		t.Fatal("SortConfig should be set")
	}
}

func TestCreateSavedFilter_MissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedFilterService(db)

	_, err := svc.Create(&CreateSavedFilterRequest{Name: "No config"})
	assertKind(t, err, ErrorValidation)

	_, err = svc.Create(&CreateSavedFilterRequest{FilterConfig: json.RawMessage(`{"a":1}`)})
	assertKind(t, err, ErrorValidation)
}

func TestCreateSavedFilter_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedFilterService(db)

	cfg := json.RawMessage(`{"status":"In Use"}`)
	if _, err := svc.Create(&CreateSavedFilterRequest{Name: "Active", FilterConfig: cfg}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(&CreateSavedFilterRequest{Name: "Active", FilterConfig: cfg})
	assertKind(t, err, ErrorDuplicate)
}

func TestCreateSavedFilter_SingleDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedFilterService(db)

	cfg := json.RawMessage(`{"status":"In Use"}`)
	first, _ := svc.Create(&CreateSavedFilterRequest{Name: "First", FilterConfig: cfg, IsDefault: true})
	second, _ := svc.Create(&CreateSavedFilterRequest{Name: "Second", FilterConfig: cfg, IsDefault: true})

	var reloaded models.SavedFilter
	db.First(&reloaded, "id = ?", first.ID)
	if reloaded.IsDefault {
		t.Error("first filter should have lost its default flag")
	}
	db.First(&reloaded, "id = ?", second.ID)
	if !reloaded.IsDefault {
		t.Error("second filter should be the default")
	}
}

func TestCreateSavedFilter_FailedCreateKeepsDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedFilterService(db)

	cfg := json.RawMessage(`{"status":"In Use"}`)
	current, err := svc.Create(&CreateSavedFilterRequest{Name: "Current", FilterConfig: cfg, IsDefault: true})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = svc.Create(&CreateSavedFilterRequest{Name: "Current", FilterConfig: cfg, IsDefault: true})
	assertKind(t, err, ErrorDuplicate)

	var reloaded models.SavedFilter
	db.First(&reloaded, "id = ?", current.ID)
	if !reloaded.IsDefault {
		t.Error("failed create must not clear the existing default")
	}
}

func TestDeleteSavedFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedFilterService(db)

	filter, _ := svc.Create(&CreateSavedFilterRequest{
		Name:         "Short lived",
		FilterConfig: json.RawMessage(`{"status":"In Use"}`),
	})

	if err := svc.Delete(filter.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	assertKind(t, svc.Delete(filter.ID), ErrorNotFound)
}

func TestListSavedFilters_Ordered(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedFilterService(db)

	cfg := json.RawMessage(`{}`)
	svc.Create(&CreateSavedFilterRequest{Name: "Zulu", FilterConfig: cfg})
	svc.Create(&CreateSavedFilterRequest{Name: "Alpha", FilterConfig: cfg})

	filters, err := svc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(filters) != 2 || filters[0].Name != "Alpha" || filters[1].Name != "Zulu" {
		t.Errorf("filters not ordered by name: %+v", filters)
	}
}
