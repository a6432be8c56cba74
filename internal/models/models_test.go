package models

import "testing"

func TestIncidentStatusValid(t *testing.T) {
	tests := []struct {
		status IncidentStatus
		valid  bool
	}{
		{StatusNew, true},
		{StatusInProgress, true},
		{StatusResolved, true},
		{"", false},
		{"bogus", false},
		{"nouveau", false}, // stored values are case-sensitive
		{"NOUVEAU", false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.valid {
			t.Errorf("Valid(%q) = %v, want %v", tt.status, got, tt.valid)
		}
	}
}

func TestNormalizeCategoryID(t *testing.T) {
	tests := []struct {
		id   int64
		want *uint
	}{
		{id: -5, want: nil},
		{id: 0, want: nil},
		{id: 3, want: func() *uint { v := uint(3); return &v }()},
	}

	for _, tt := range tests {
		got := NormalizeCategoryID(tt.id)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("NormalizeCategoryID(%d) = %d, want nil", tt.id, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("NormalizeCategoryID(%d) = %v, want %d", tt.id, got, *tt.want)
		}
	}
}
