package entity

import (
	"time"

	"github.com/google/uuid"
)

// Complaint is a presenting complaint recorded against a patient.
// ComplaintNo is assigned server-side: per patient the numbers form a
// gapless ascending sequence starting at 1, guarded by the composite
// unique index on (patient_id, complaint_no).
type Complaint struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_complaints_patient_no,priority:1" json:"patient_id"`
	ComplaintNo   int       `gorm:"not null;uniqueIndex:idx_complaints_patient_no,priority:2" json:"complaint_no"`
	ComplaintText string    `gorm:"type:text;not null" json:"complaint_text"`
	Location      string    `gorm:"type:varchar(255);not null" json:"location"`
	Sensation     string    `gorm:"type:varchar(255);not null" json:"sensation"`
	Concomitants  string    `gorm:"type:text;not null" json:"concomitants"`
	Onset         string    `gorm:"type:varchar(20)" json:"onset,omitempty"`
	Aggravation   string    `gorm:"type:text" json:"aggravation,omitempty"`
	Amelioration  string    `gorm:"type:text" json:"amelioration,omitempty"`
	Duration      string    `gorm:"type:varchar(100)" json:"duration,omitempty"`
	Severity      string    `gorm:"type:varchar(20);index" json:"severity,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// Onset constants
const (
	OnsetSudden  = "Sudden"
	OnsetGradual = "Gradual"
)

// Severity constants
const (
	SeverityMild     = "Mild"
	SeverityModerate = "Moderate"
	SeveritySevere   = "Severe"
)
