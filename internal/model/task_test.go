package model

import "testing"

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in     string
		want   Priority
		wantOK bool
	}{
		{"high", PriorityHigh, true},
		{" HIGH ", PriorityHigh, true},
		{"Medium", PriorityMedium, true},
		{"low", PriorityLow, true},
		{"urgent", "urgent", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePriority(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePriority(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	if !(PriorityHigh.Rank() > PriorityMedium.Rank() && PriorityMedium.Rank() > PriorityLow.Rank()) {
		t.Error("expected high > medium > low")
	}
	if Priority("x").Rank() != 0 {
		t.Error("unknown priority must rank 0")
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory("  Покупки "); got == nil || *got != "покупки" {
		t.Errorf("NormalizeCategory = %v", got)
	}
	if NormalizeCategory("   ") != nil {
		t.Error("blank category must be nil")
	}
}
