package dto

import (
	"time"

	"github.com/google/uuid"

	"homeo-clinic-api/internal/domain/entity"
)

// Request DTOs

type MedicineRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	Potency   string `json:"potency" validate:"omitempty,max=50"`
	Dosage    string `json:"dosage" validate:"omitempty,max=100"`
	Frequency string `json:"frequency" validate:"omitempty,max=100"`
}

type CreatePrescriptionRequest struct {
	PatientID     uuid.UUID         `json:"patient_id" validate:"required"`
	Medicines     []MedicineRequest `json:"medicines" validate:"required,min=1,dive"`
	Reason        string            `json:"reason"`
	FollowUpNotes string            `json:"follow_up_notes"`
	Date          string            `json:"date" validate:"omitempty,datetime=2006-01-02"`
	NextVisit     string            `json:"next_visit" validate:"omitempty,datetime=2006-01-02"`
}

type UpdatePrescriptionRequest struct {
	Medicines     []MedicineRequest `json:"medicines" validate:"required,min=1,dive"`
	Reason        string            `json:"reason"`
	FollowUpNotes string            `json:"follow_up_notes"`
	Date          string            `json:"date" validate:"omitempty,datetime=2006-01-02"`
	NextVisit     string            `json:"next_visit" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID            uuid.UUID           `json:"id"`
	PatientID     uuid.UUID           `json:"patient_id"`
	Medicines     entity.MedicineList `json:"medicines"`
	Reason        string              `json:"reason,omitempty"`
	FollowUpNotes string              `json:"follow_up_notes,omitempty"`
	Date          time.Time           `json:"date"`
	NextVisit     *time.Time          `json:"next_visit,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
