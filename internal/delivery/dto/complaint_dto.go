package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateComplaintRequest deliberately has no complaint number field: the
// number is always assigned server-side.
type CreateComplaintRequest struct {
	PatientID     uuid.UUID `json:"patient_id" validate:"required"`
	ComplaintText string    `json:"complaint_text" validate:"required"`
	Location      string    `json:"location" validate:"required,max=255"`
	Sensation     string    `json:"sensation" validate:"required,max=255"`
	Concomitants  string    `json:"concomitants" validate:"required"`
	Onset         string    `json:"onset" validate:"omitempty,oneof=Sudden Gradual"`
	Aggravation   string    `json:"aggravation"`
	Amelioration  string    `json:"amelioration"`
	Duration      string    `json:"duration" validate:"omitempty,max=100"`
	Severity      string    `json:"severity" validate:"omitempty,oneof=Mild Moderate Severe"`
}

type ListComplaintsQuery struct {
	Page     int
	Limit    int
	Search   string
	Severity string
	SortBy   string
	Order    string
	DateFrom string
	DateTo   string
}

// Response DTOs

type ComplaintResponse struct {
	ID            uuid.UUID `json:"id"`
	PatientID     uuid.UUID `json:"patient_id"`
	ComplaintNo   int       `json:"complaint_no"`
	ComplaintText string    `json:"complaint_text"`
	Location      string    `json:"location"`
	Sensation     string    `json:"sensation"`
	Concomitants  string    `json:"concomitants"`
	Onset         string    `json:"onset,omitempty"`
	Aggravation   string    `json:"aggravation,omitempty"`
	Amelioration  string    `json:"amelioration,omitempty"`
	Duration      string    `json:"duration,omitempty"`
	Severity      string    `json:"severity,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
