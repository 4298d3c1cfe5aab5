package repository

import (
	"context"
	"errors"

	domainRepo "homeo-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type caseModuleRepository[E any] struct{}

// NewCaseModuleRepository builds the shared repository for a one-to-one
// case-module table. The entity type carries the table mapping.
func NewCaseModuleRepository[E any]() domainRepo.CaseModuleRepository[E] {
	return &caseModuleRepository[E]{}
}

func (r *caseModuleRepository[E]) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (*E, error) {
	var record E
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Upsert is a single INSERT ... ON CONFLICT (patient_id) DO UPDATE, so
// two concurrent writers for the same patient cannot create a second
// row. All mutable columns are replaced: a PUT is a full replace of the
// module, never a merge.
func (r *caseModuleRepository[E]) Upsert(ctx context.Context, db *gorm.DB, record *E) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "patient_id"}},
			UpdateAll: true,
		}).
		Create(record).Error
}
