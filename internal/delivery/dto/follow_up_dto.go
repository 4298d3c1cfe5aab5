package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateFollowUpRequest struct {
	PrescriptionID *uuid.UUID `json:"prescription_id"`
	Date           string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	PatientState   string     `json:"patient_state"`
	Assessment     string     `json:"assessment"`
	NextVisitDate  string     `json:"next_visit_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateFollowUpRequest struct {
	PrescriptionID *uuid.UUID `json:"prescription_id"`
	Date           string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	PatientState   string     `json:"patient_state"`
	Assessment     string     `json:"assessment"`
	NextVisitDate  string     `json:"next_visit_date" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type FollowUpResponse struct {
	ID             uuid.UUID  `json:"id"`
	PatientID      uuid.UUID  `json:"patient_id"`
	PrescriptionID *uuid.UUID `json:"prescription_id,omitempty"`
	Date           time.Time  `json:"date"`
	PatientState   string     `json:"patient_state,omitempty"`
	Assessment     string     `json:"assessment,omitempty"`
	NextVisitDate  *time.Time `json:"next_visit_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
