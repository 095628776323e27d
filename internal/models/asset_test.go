package models

import "testing"

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{"In Use", true},
		{"In Use - Loaned to student", true},
		{"Awaiting allocation", true},
		{"Decommissioned - Stolen", true},
		{"Retired - Lost", true},
		{"", false},
		{"in use", false},
		{"Decommissioned", false},
		{"Broken", false},
	}

	for _, tt := range tests {
		if got := IsValidStatus(tt.status); got != tt.expected {
			t.Errorf("IsValidStatus(%q) = %v, expected %v", tt.status, got, tt.expected)
		}
	}
}

func TestIsValidCondition(t *testing.T) {
	for _, c := range AssetConditions {
		if !IsValidCondition(c) {
			t.Errorf("IsValidCondition(%q) should be true", c)
		}
	}

	invalid := []string{"", "new", "Good", "BROKEN"}
	for _, c := range invalid {
		if IsValidCondition(c) {
			t.Errorf("IsValidCondition(%q) should be false", c)
		}
	}
}

func TestStatusFamilies(t *testing.T) {
	tests := []struct {
		status         string
		decommissioned bool
		retired        bool
		inUse          bool
		awaiting       bool
	}{
		{"In Use", false, false, true, false},
		{"In Use - Loaned to staff", false, false, true, false},
		{"Awaiting delivery", false, false, false, true},
		{"Decommissioned - Damaged", true, false, false, false},
		{"Decommissioned - Written Off", true, false, false, false},
		{"Retired - Uncollected", false, true, false, false},
		{"", false, false, false, false},
	}

	for _, tt := range tests {
		if got := IsDecommissioned(tt.status); got != tt.decommissioned {
			t.Errorf("IsDecommissioned(%q) = %v, expected %v", tt.status, got, tt.decommissioned)
		}
		if got := IsRetired(tt.status); got != tt.retired {
			t.Errorf("IsRetired(%q) = %v, expected %v", tt.status, got, tt.retired)
		}
		if got := IsInUse(tt.status); got != tt.inUse {
			t.Errorf("IsInUse(%q) = %v, expected %v", tt.status, got, tt.inUse)
		}
		if got := IsAwaiting(tt.status); got != tt.awaiting {
			t.Errorf("IsAwaiting(%q) = %v, expected %v", tt.status, got, tt.awaiting)
		}
	}
}

func TestEveryStatusBelongsToOneFamily(t *testing.T) {
	for _, s := range AssetStatuses {
		families := 0
		for _, in := range []bool{IsInUse(s), IsAwaiting(s), IsDecommissioned(s), IsRetired(s)} {
			if in {
				families++
			}
		}
		if families != 1 {
			t.Errorf("status %q matched %d families, expected exactly 1", s, families)
		}
	}
}
