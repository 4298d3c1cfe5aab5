package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name            string
		page, limit     int
		total, filtered int64
		wantPages       int
	}{
		{"exact fit", 1, 10, 100, 100, 10},
		{"partial last page", 1, 10, 100, 91, 10},
		{"single row", 1, 10, 100, 1, 1},
		{"empty", 1, 10, 0, 0, 0},
		{"filtered below total", 2, 25, 500, 60, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total, tt.filtered)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.Total != tt.total || p.TotalFiltered != tt.filtered {
				t.Errorf("totals not carried through: %+v", p)
			}
		})
	}
}

func TestSuccessEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, 200, "ok", map[string]string{"key": "value"})

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Message != "ok" {
		t.Errorf("envelope: %+v", resp)
	}
	if resp.Error != nil || resp.Pagination != nil {
		t.Errorf("unexpected fields set: %+v", resp)
	}
}

func TestErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	NotFound(w, "Patient not found")

	if w.Code != 404 {
		t.Errorf("status = %d", w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success {
		t.Error("error response marked success")
	}
	if resp.Message != "Patient not found" {
		t.Errorf("message = %q", resp.Message)
	}
}
