package entity

import (
	"time"

	"github.com/google/uuid"
)

// FollowUp is a visit record, optionally linked to the prescription it
// reviews. Deleting a prescription does not cascade here; the link is
// nullable and left dangling on purpose.
type FollowUp struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	PrescriptionID *uuid.UUID `gorm:"type:uuid" json:"prescription_id,omitempty"`
	Date           time.Time  `gorm:"not null" json:"date"`
	PatientState   string     `gorm:"type:text" json:"patient_state,omitempty"`
	Assessment     string     `gorm:"type:text" json:"assessment,omitempty"`
	NextVisitDate  *time.Time `json:"next_visit_date,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (FollowUp) TableName() string {
	return "follow_ups"
}
