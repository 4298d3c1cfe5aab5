package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	PatientID     string `json:"patient_id" validate:"required,patientid,max=50"`
	Name          string `json:"name" validate:"required,min=1,max=255"`
	Age           *int   `json:"age" validate:"required,gte=0,lte=120"`
	Sex           string `json:"sex" validate:"required,oneof=Male Female Other"`
	MaritalStatus string `json:"marital_status" validate:"omitempty,oneof=Single Married Widowed Divorced"`
	Diet          string `json:"diet" validate:"omitempty,oneof=Vegetarian Non-Vegetarian Mixed"`
	Education     string `json:"education" validate:"omitempty,max=100"`
	Occupation    string `json:"occupation" validate:"omitempty,max=100"`
	Address       string `json:"address"`
	Summary       string `json:"summary"`
	ReferredBy    string `json:"referred_by" validate:"omitempty,max=255"`
	MobileNo      string `json:"mobile_no" validate:"omitempty,mobile"`
}

// UpdatePatientRequest edits demographic fields; the business patient_id
// is immutable once assigned.
type UpdatePatientRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=255"`
	Age           *int   `json:"age" validate:"required,gte=0,lte=120"`
	Sex           string `json:"sex" validate:"required,oneof=Male Female Other"`
	MaritalStatus string `json:"marital_status" validate:"omitempty,oneof=Single Married Widowed Divorced"`
	Diet          string `json:"diet" validate:"omitempty,oneof=Vegetarian Non-Vegetarian Mixed"`
	Education     string `json:"education" validate:"omitempty,max=100"`
	Occupation    string `json:"occupation" validate:"omitempty,max=100"`
	Address       string `json:"address"`
	Summary       string `json:"summary"`
	ReferredBy    string `json:"referred_by" validate:"omitempty,max=255"`
	MobileNo      string `json:"mobile_no" validate:"omitempty,mobile"`
}

type ListPatientsQuery struct {
	Page     int
	Limit    int
	Search   string
	Sex      string
	SortBy   string
	Order    string
	DateFrom string
	DateTo   string
}

// Response DTOs

type PatientResponse struct {
	ID            uuid.UUID `json:"id"`
	PatientID     string    `json:"patient_id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Sex           string    `json:"sex"`
	MaritalStatus string    `json:"marital_status,omitempty"`
	Diet          string    `json:"diet,omitempty"`
	Education     string    `json:"education,omitempty"`
	Occupation    string    `json:"occupation,omitempty"`
	Address       string    `json:"address,omitempty"`
	Summary       string    `json:"summary,omitempty"`
	ReferredBy    string    `json:"referred_by,omitempty"`
	MobileNo      string    `json:"mobile_no,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
