package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseModuleRepository is the shared access pattern for the eight
// one-to-one case-module tables. E is the module entity type.
type CaseModuleRepository[E any] interface {
	// FindByPatientID returns the patient's record for this module, or
	// nil when the section has not been filled in yet.
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (*E, error)
	// Upsert atomically creates the record or fully replaces its mutable
	// columns, keyed on the unique patient_id index.
	Upsert(ctx context.Context, db *gorm.DB, record *E) error
}
