package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"homeo-clinic-api/internal/domain/entity"
)

// Request DTOs

type LabResultRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Value          string `json:"value" validate:"required,max=100"`
	Unit           string `json:"unit" validate:"omitempty,max=50"`
	ReferenceRange string `json:"reference_range" validate:"omitempty,max=100"`
}

type CreateInvestigationRequest struct {
	Date       string             `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Type       string             `json:"type" validate:"omitempty,max=100"`
	Hb         *decimal.Decimal   `json:"hb"`
	WBC        *decimal.Decimal   `json:"wbc"`
	ESR        *decimal.Decimal   `json:"esr"`
	BloodSugar *decimal.Decimal   `json:"blood_sugar"`
	ReportText string             `json:"report_text"`
	Results    []LabResultRequest `json:"results" validate:"omitempty,dive"`
	Summary    string             `json:"summary"`
}

type UpdateInvestigationRequest struct {
	Date       string             `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Type       string             `json:"type" validate:"omitempty,max=100"`
	Hb         *decimal.Decimal   `json:"hb"`
	WBC        *decimal.Decimal   `json:"wbc"`
	ESR        *decimal.Decimal   `json:"esr"`
	BloodSugar *decimal.Decimal   `json:"blood_sugar"`
	ReportText string             `json:"report_text"`
	Results    []LabResultRequest `json:"results" validate:"omitempty,dive"`
	Summary    string             `json:"summary"`
}

// Response DTOs

type InvestigationResponse struct {
	ID         uuid.UUID            `json:"id"`
	PatientID  uuid.UUID            `json:"patient_id"`
	Date       time.Time            `json:"date"`
	Type       string               `json:"type,omitempty"`
	Hb         *decimal.Decimal     `json:"hb,omitempty"`
	WBC        *decimal.Decimal     `json:"wbc,omitempty"`
	ESR        *decimal.Decimal     `json:"esr,omitempty"`
	BloodSugar *decimal.Decimal     `json:"blood_sugar,omitempty"`
	ReportText string               `json:"report_text,omitempty"`
	Results    entity.LabResultList `json:"results,omitempty"`
	Summary    string               `json:"summary,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}
