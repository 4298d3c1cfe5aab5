package repository

import (
	"context"

	"homeo-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	// FindByPatientID looks up by the business identifier (e.g. "PT-001").
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) (*entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	// Search returns one page plus the unfiltered and filtered totals.
	Search(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, int64, error)
}
