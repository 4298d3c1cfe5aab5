package entity

import "testing"

func TestPatientFilterNormalize(t *testing.T) {
	tests := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"defaults", 0, 0, 1, DefaultPageSize},
		{"negative page", -5, 20, 1, 20},
		{"limit clamped", 1, 5000, 1, MaxPageSize},
		{"in range", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := PatientFilter{Page: tt.page, Limit: tt.limit}
			f.Normalize()
			if f.Page != tt.wantPage || f.Limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d", f.Page, f.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPatientFilterOffset(t *testing.T) {
	f := PatientFilter{Page: 3, Limit: 10}
	f.Normalize()
	if got := f.Offset(); got != 20 {
		t.Errorf("offset = %d, want 20", got)
	}
}

func TestPatientFilterSortClause(t *testing.T) {
	tests := []struct {
		sortBy, order string
		want          string
	}{
		{"", "", "created_at DESC"},
		{"name", "asc", "name ASC"},
		{"age", "desc", "age DESC"},
		{"patient_id", "ASC", "patient_id ASC"},
		{"password; DROP TABLE patients", "asc", "created_at ASC"},
		{"created_at", "sideways", "created_at DESC"},
	}

	for _, tt := range tests {
		f := PatientFilter{SortBy: tt.sortBy, Order: tt.order}
		if got := f.SortClause(); got != tt.want {
			t.Errorf("SortClause(%q, %q) = %q, want %q", tt.sortBy, tt.order, got, tt.want)
		}
	}
}

func TestComplaintFilterSortClause(t *testing.T) {
	f := ComplaintFilter{SortBy: "complaint_no", Order: "asc"}
	if got := f.SortClause(); got != "complaint_no ASC" {
		t.Errorf("SortClause = %q", got)
	}

	f = ComplaintFilter{SortBy: "nonsense"}
	if got := f.SortClause(); got != "created_at DESC" {
		t.Errorf("unknown column fell back to %q", got)
	}
}
