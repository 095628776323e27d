package services

import (
	"fmt"
	"testing"
)

func TestAssetCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssetService(db)
	cat := createTestCategory(t, db, "Laptops")

	created, err := svc.Create(&CreateAssetRequest{
		ItemNumber:   "IT-0001",
		Status:       "In Use",
		Condition:    "GOOD",
		Model:        "Latitude 7420",
		SerialNumber: "SN001",
		AssignedTo:   "Alice",
		CategoryID:   &cat.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("no id assigned")
	}

	got, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ItemNumber != "IT-0001" || got.Status != "In Use" {
		t.Errorf("got %+v", got)
	}
	if got.Category == nil || got.Category.Name != "Laptops" {
		t.Error("category not preloaded")
	}

	_, err = svc.GetByID("no-such-id")
	assertKind(t, err, ErrorNotFound)
}

func TestAssetCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssetService(db)

	tests := []struct {
		name string
		req  CreateAssetRequest
	}{
		{"missing item number", CreateAssetRequest{Status: "In Use"}},
		{"whitespace item number", CreateAssetRequest{ItemNumber: "   ", Status: "In Use"}},
		{"missing status", CreateAssetRequest{ItemNumber: "IT-0001"}},
		{"unknown status", CreateAssetRequest{ItemNumber: "IT-0001", Status: "Broken"}},
		{"unknown condition", CreateAssetRequest{ItemNumber: "IT-0001", Status: "In Use", Condition: "SHINY"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(&tt.req)
			assertKind(t, err, ErrorValidation)
		})
	}

	missing := "no-such-category"
	_, err := svc.Create(&CreateAssetRequest{ItemNumber: "IT-0001", Status: "In Use", CategoryID: &missing})
	assertKind(t, err, ErrorValidation)
}

func TestAssetCreateDuplicateItemNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssetService(db)

	if _, err := svc.Create(&CreateAssetRequest{ItemNumber: "IT-0001", Status: "In Use"}); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Create(&CreateAssetRequest{ItemNumber: "IT-0001", Status: "Awaiting delivery"})
	assertKind(t, err, ErrorDuplicate)
}

func TestAssetUpdateSparse(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssetService(db)
	asset := createTestAsset(t, db, "IT-0001", "In Use")

	newStatus := "Awaiting collection"
	got, err := svc.Update(asset.ID, &UpdateAssetRequest{Status: &newStatus})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Status != newStatus {
		t.Errorf("Status = %q, want %q", got.Status, newStatus)
	}
	if got.ItemNumber != "IT-0001" {
		t.Errorf("absent field changed: ItemNumber = %q", got.ItemNumber)
	}

	// Present empty string clears a foreign key.
	cat := createTestCategory(t, db, "Laptops")
	if _, err := svc.Update(asset.ID, &UpdateAssetRequest{CategoryID: &cat.ID}); err != nil {
		t.Fatal(err)
	}
	empty := ""
	got, err = svc.Update(asset.ID, &UpdateAssetRequest{CategoryID: &empty})
	if err != nil {
		t.Fatal(err)
	}
	if got.CategoryID != nil {
		t.Errorf("CategoryID = %v, want cleared", *got.CategoryID)
	}
}

func TestAssetUpdateDuplicateItemNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssetService(db)
	createTestAsset(t, db, "IT-0001", "In Use")
	b := createTestAsset(t, db, "IT-0002", "In Use")

	taken := "IT-0001"
	_, err := svc.Update(b.ID, &UpdateAssetRequest{ItemNumber: &taken})
	assertKind(t, err, ErrorDuplicate)

	// Keeping its own number is not a conflict.
	own := "IT-0002"
	if _, err := svc.Update(b.ID, &UpdateAssetRequest{ItemNumber: &own}); err != nil {
		t.Errorf("re-setting own item number: %v", err)
	}

	_, err = svc.Update("no-such-id", &UpdateAssetRequest{ItemNumber: &own})
	assertKind(t, err, ErrorNotFound)
}

func TestAssetUpdateDecommissionDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssetService(db)
	asset := createTestAsset(t, db, "IT-0001", "In Use")

	date := "2026-03-15"
	got, err := svc.Update(asset.ID, &UpdateAssetRequest{DecommissionDate: &date})
	if err != nil {
		t.Fatal(err)
	}
	if got.DecommissionDate == nil || got.DecommissionDate.Format("2006-01-02") != date {
		t.Errorf("DecommissionDate = %v, want %s", got.DecommissionDate, date)
	}

	empty := ""
	got, err = svc.Update(asset.ID, &UpdateAssetRequest{DecommissionDate: &empty})
	if err != nil {
		t.Fatal(err)
	}
	if got.DecommissionDate != nil {
		t.Errorf("DecommissionDate = %v, want cleared", got.DecommissionDate)
	}

	bad := "15/03/2026"
	_, err = svc.Update(asset.ID, &UpdateAssetRequest{DecommissionDate: &bad})
	assertKind(t, err, ErrorValidation)
}

func TestAssetDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssetService(db)
	asset := createTestAsset(t, db, "IT-0001", "In Use")

	if err := svc.Delete(asset.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err := svc.GetByID(asset.ID)
	assertKind(t, err, ErrorNotFound)

	assertKind(t, svc.Delete(asset.ID), ErrorNotFound)
}

func TestAssetListFiltersAndPaging(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssetService(db)

	for i := 1; i <= 5; i++ {
		createTestAsset(t, db, fmt.Sprintf("IT-%04d", i), "In Use")
	}
	createTestAsset(t, db, "IT-0006", "Retired - Lost")

	got, err := svc.List(&AssetListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got.Total != 6 {
		t.Errorf("Total = %d, want 6", got.Total)
	}
	// Ordered by item number.
	for i := 1; i < len(got.Items); i++ {
		if got.Items[i-1].ItemNumber > got.Items[i].ItemNumber {
			t.Errorf("items out of order: %q before %q", got.Items[i-1].ItemNumber, got.Items[i].ItemNumber)
		}
	}

	got, err = svc.List(&AssetListRequest{Status: "Retired - Lost"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Total != 1 || got.Items[0].ItemNumber != "IT-0006" {
		t.Errorf("status filter = %+v", got.Items)
	}

	got, err = svc.List(&AssetListRequest{Page: 2, PageSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	if got.Total != 6 || len(got.Items) != 2 {
		t.Errorf("page 2 of 4: total %d, %d items", got.Total, len(got.Items))
	}
	if got.Items[0].ItemNumber != "IT-0005" {
		t.Errorf("page 2 starts at %q, want IT-0005", got.Items[0].ItemNumber)
	}
}

func TestAssetListSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssetService(db)

	a := createTestAsset(t, db, "IT-0001", "In Use")
	if err := db.Model(a).Updates(map[string]interface{}{"assigned_to": "Alice Chen", "serial_number": "SN12345"}).Error; err != nil {
		t.Fatal(err)
	}
	createTestAsset(t, db, "IT-0002", "In Use")

	for _, term := range []string{"IT-0001", "Alice", "SN123"} {
		got, err := svc.List(&AssetListRequest{Search: term})
		if err != nil {
			t.Fatal(err)
		}
		if got.Total != 1 || got.Items[0].ID != a.ID {
			t.Errorf("search %q matched %d items", term, got.Total)
		}
	}

	got, err := svc.List(&AssetListRequest{Search: "zzz-no-match"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Total != 0 {
		t.Errorf("search miss Total = %d, want 0", got.Total)
	}
}
