package entity

import "time"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PatientFilter is a domain-level filter for querying patients.
// Used by the repository layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	Page     int
	Limit    int
	Search   string // ILIKE over patient_id, name, address
	Sex      string // exact match
	SortBy   string
	Order    string
	DateFrom *time.Time // on created_at
	DateTo   *time.Time // inclusive through end of day, normalized by the handler
}

var patientSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
	"age":        "age",
	"patient_id": "patient_id",
}

// Normalize clamps pagination (page >= 1, limit in [1, MaxPageSize]) and
// falls back to defaults for missing values.
func (f *PatientFilter) Normalize() {
	f.Page, f.Limit = normalizePage(f.Page, f.Limit)
}

// Offset returns the row offset for the normalized page.
func (f *PatientFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// SortClause returns a safe ORDER BY clause. Unknown columns fall back to
// created_at so the sort key can never carry injected SQL.
func (f *PatientFilter) SortClause() string {
	return sortClause(patientSortColumns, f.SortBy, f.Order)
}

// ComplaintFilter is a domain-level filter for querying complaints.
type ComplaintFilter struct {
	Page     int
	Limit    int
	Search   string // ILIKE over complaint_text, location, sensation
	Severity string // exact match
	SortBy   string
	Order    string
	DateFrom *time.Time
	DateTo   *time.Time
}

var complaintSortColumns = map[string]string{
	"created_at":   "created_at",
	"complaint_no": "complaint_no",
	"severity":     "severity",
}

func (f *ComplaintFilter) Normalize() {
	f.Page, f.Limit = normalizePage(f.Page, f.Limit)
}

func (f *ComplaintFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

func (f *ComplaintFilter) SortClause() string {
	return sortClause(complaintSortColumns, f.SortBy, f.Order)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

func sortClause(columns map[string]string, sortBy, order string) string {
	column, ok := columns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if order == "asc" || order == "ASC" {
		direction = "ASC"
	}
	return column + " " + direction
}
