package repository

import (
	"context"

	"homeo-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvestigationRepository interface {
	Create(ctx context.Context, db *gorm.DB, investigation *entity.Investigation) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Investigation, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Investigation, error)
	Update(ctx context.Context, db *gorm.DB, investigation *entity.Investigation) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
