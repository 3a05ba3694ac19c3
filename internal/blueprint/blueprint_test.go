package blueprint

import "testing"

func TestEmpty(t *testing.T) {
	var nilBP *Blueprint
	if !nilBP.Empty() {
		t.Error("nil blueprint should be empty")
	}
	if !(&Blueprint{}).Empty() {
		t.Error("zero blueprint should be empty")
	}
	if (&Blueprint{ProjectInfo: &ProjectInfo{Name: "x"}}).Empty() {
		t.Error("blueprint with project info should not be empty")
	}
	if (&Blueprint{Features: []Feature{{ID: "f1"}}}).Empty() {
		t.Error("blueprint with features should not be empty")
	}
}

func TestName(t *testing.T) {
	var nilBP *Blueprint
	if got := nilBP.Name(); got != "unknown" {
		t.Errorf("nil name = %q, want unknown", got)
	}
	if got := (&Blueprint{}).Name(); got != "unknown" {
		t.Errorf("missing name = %q, want unknown", got)
	}
	bp := &Blueprint{ProjectInfo: &ProjectInfo{Name: "Shop"}}
	if got := bp.Name(); got != "Shop" {
		t.Errorf("name = %q, want Shop", got)
	}
}

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"HIGH", PriorityHigh},
		{"high", PriorityHigh},
		{" low ", PriorityLow},
		{"MEDIUM", PriorityMedium},
		{"", PriorityMedium},
		{"urgent", PriorityMedium},
	}
	for _, tt := range tests {
		if got := NormalizePriority(tt.in); got != tt.want {
			t.Errorf("NormalizePriority(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAllEntities(t *testing.T) {
	var nilSchema *DatabaseSchema
	if got := nilSchema.AllEntities(); got != nil {
		t.Error("nil schema should yield nil entities")
	}

	s := &DatabaseSchema{Tables: []Entity{{Name: "User"}}}
	if got := s.AllEntities(); len(got) != 1 || got[0].Name != "User" {
		t.Errorf("tables alias not honored: %+v", got)
	}

	s.Entities = []Entity{{Name: "Order"}}
	if got := s.AllEntities(); len(got) != 1 || got[0].Name != "Order" {
		t.Errorf("entities should win over tables: %+v", got)
	}
}
