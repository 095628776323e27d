package services

import (
	"fmt"
	"testing"
)

func TestDashboardStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	got, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if got.Stats.TotalAssets != 0 {
		t.Errorf("TotalAssets = %d, want 0", got.Stats.TotalAssets)
	}
	if len(got.StatusCounts) != 0 || len(got.RecentAssets) != 0 {
		t.Errorf("empty inventory returned counts: %+v", got)
	}
}

func TestDashboardStatusFamilies(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	createTestAsset(t, db, "IT-0001", "In Use")
	createTestAsset(t, db, "IT-0002", "In Use - Loaned to student")
	createTestAsset(t, db, "IT-0003", "Awaiting allocation")
	createTestAsset(t, db, "IT-0004", "Decommissioned - Damaged")
	createTestAsset(t, db, "IT-0005", "Decommissioned - Stolen")
	createTestAsset(t, db, "IT-0006", "Retired - Lost")

	got, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if got.Stats.TotalAssets != 6 {
		t.Errorf("TotalAssets = %d, want 6", got.Stats.TotalAssets)
	}
	if got.Stats.InUse != 2 {
		t.Errorf("InUse = %d, want 2", got.Stats.InUse)
	}
	if got.Stats.Awaiting != 1 {
		t.Errorf("Awaiting = %d, want 1", got.Stats.Awaiting)
	}
	if got.Stats.Decommissioned != 2 {
		t.Errorf("Decommissioned = %d, want 2", got.Stats.Decommissioned)
	}
	if got.Stats.Retired != 1 {
		t.Errorf("Retired = %d, want 1", got.Stats.Retired)
	}

	// Raw breakdown keeps the distinct status values apart.
	if len(got.StatusCounts) != 6 {
		t.Errorf("StatusCounts has %d entries, want 6", len(got.StatusCounts))
	}
}

func TestDashboardTopCategories(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	laptops := createTestCategory(t, db, "Laptops")
	monitors := createTestCategory(t, db, "Monitors")

	for i, catID := range []string{laptops.ID, laptops.ID, laptops.ID, monitors.ID} {
		asset := createTestAsset(t, db, fmt.Sprintf("IT-010%d", i), "In Use")
		if err := db.Model(asset).Update("category_id", catID).Error; err != nil {
			t.Fatal(err)
		}
	}
	// Uncategorized assets stay out of the category breakdown.
	createTestAsset(t, db, "IT-0200", "In Use")

	got, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if len(got.TopCategories) != 2 {
		t.Fatalf("TopCategories has %d entries, want 2", len(got.TopCategories))
	}
	if got.TopCategories[0].CategoryName != "Laptops" || got.TopCategories[0].Count != 3 {
		t.Errorf("top category = %+v, want Laptops with 3", got.TopCategories[0])
	}
	if got.TopCategories[1].CategoryName != "Monitors" || got.TopCategories[1].Count != 1 {
		t.Errorf("second category = %+v, want Monitors with 1", got.TopCategories[1])
	}
}

func TestDashboardConditionCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	for i, cond := range []string{"GOOD", "GOOD", "POOR"} {
		asset := createTestAsset(t, db, fmt.Sprintf("IT-030%d", i), "In Use")
		if err := db.Model(asset).Update("condition", cond).Error; err != nil {
			t.Fatal(err)
		}
	}
	// No condition set: excluded from the breakdown.
	createTestAsset(t, db, "IT-0400", "In Use")

	got, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	want := map[string]int64{"GOOD": 2, "POOR": 1}
	if len(got.ConditionCounts) != len(want) {
		t.Fatalf("ConditionCounts = %+v, want %v", got.ConditionCounts, want)
	}
	for _, cc := range got.ConditionCounts {
		if want[cc.Condition] != cc.Count {
			t.Errorf("condition %s = %d, want %d", cc.Condition, cc.Count, want[cc.Condition])
		}
	}
}
