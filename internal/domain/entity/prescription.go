package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Medicine is a single remedy entry on a prescription.
type Medicine struct {
	Name      string `json:"name"`
	Potency   string `json:"potency,omitempty"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

// MedicineList is stored as a JSONB column.
type MedicineList []Medicine

// Value implements driver.Valuer.
func (m MedicineList) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *MedicineList) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []Medicine
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*m = result
	return nil
}

// Prescription is an ordered list of remedies issued to a patient.
type Prescription struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"patient_id"`
	Medicines     MedicineList `gorm:"type:jsonb;not null" json:"medicines"`
	Reason        string       `gorm:"type:text" json:"reason,omitempty"`
	FollowUpNotes string       `gorm:"type:text" json:"follow_up_notes,omitempty"`
	Date          time.Time    `gorm:"not null" json:"date"`
	NextVisit     *time.Time   `json:"next_visit,omitempty"`
	CreatedAt     time.Time    `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
