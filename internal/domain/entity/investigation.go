package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LabResult is an arbitrary named measurement on an investigation report.
type LabResult struct {
	Name           string `json:"name"`
	Value          string `json:"value"`
	Unit           string `json:"unit,omitempty"`
	ReferenceRange string `json:"reference_range,omitempty"`
}

// LabResultList is stored as a JSONB column.
type LabResultList []LabResult

// Value implements driver.Valuer.
func (l LabResultList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *LabResultList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
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

	var result []LabResult
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*l = result
	return nil
}

// Investigation is a lab/diagnostic report attached to a patient. The
// common haematology fields get typed decimal columns; anything else
// goes into the Results list.
type Investigation struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"patient_id"`
	Date       time.Time        `gorm:"not null" json:"date"`
	Type       string           `gorm:"type:varchar(100)" json:"type,omitempty"`
	Hb         *decimal.Decimal `gorm:"type:numeric(6,2)" json:"hb,omitempty"`
	WBC        *decimal.Decimal `gorm:"type:numeric(8,2)" json:"wbc,omitempty"`
	ESR        *decimal.Decimal `gorm:"type:numeric(6,2)" json:"esr,omitempty"`
	BloodSugar *decimal.Decimal `gorm:"type:numeric(6,2)" json:"blood_sugar,omitempty"`
	ReportText string           `gorm:"type:text" json:"report_text,omitempty"`
	Results    LabResultList    `gorm:"type:jsonb" json:"results,omitempty"`
	Summary    string           `gorm:"type:text" json:"summary,omitempty"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Investigation) TableName() string {
	return "investigations"
}
