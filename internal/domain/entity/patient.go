package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the root clinical record. Complaints, case modules,
// prescriptions, follow-ups and investigations all reference it by ID.
type Patient struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"patient_id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Age           int       `gorm:"not null" json:"age"`
	Sex           string    `gorm:"type:varchar(10);not null;index" json:"sex"`
	MaritalStatus string    `gorm:"type:varchar(20)" json:"marital_status,omitempty"`
	Diet          string    `gorm:"type:varchar(20)" json:"diet,omitempty"`
	Education     string    `gorm:"type:varchar(100)" json:"education,omitempty"`
	Occupation    string    `gorm:"type:varchar(100)" json:"occupation,omitempty"`
	Address       string    `gorm:"type:text" json:"address,omitempty"`
	Summary       string    `gorm:"type:text" json:"summary,omitempty"`
	ReferredBy    string    `gorm:"type:varchar(255)" json:"referred_by,omitempty"`
	MobileNo      string    `gorm:"type:varchar(20)" json:"mobile_no,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Complaints []Complaint `gorm:"foreignKey:PatientID" json:"complaints,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Sex constants
const (
	SexMale   = "Male"
	SexFemale = "Female"
	SexOther  = "Other"
)

// Marital status constants
const (
	MaritalSingle   = "Single"
	MaritalMarried  = "Married"
	MaritalWidowed  = "Widowed"
	MaritalDivorced = "Divorced"
)

// Diet constants
const (
	DietVegetarian    = "Vegetarian"
	DietNonVegetarian = "Non-Vegetarian"
	DietMixed         = "Mixed"
)
