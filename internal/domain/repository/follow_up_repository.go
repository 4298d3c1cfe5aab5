package repository

import (
	"context"

	"homeo-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowUpRepository interface {
	Create(ctx context.Context, db *gorm.DB, followUp *entity.FollowUp) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.FollowUp, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.FollowUp, error)
	Update(ctx context.Context, db *gorm.DB, followUp *entity.FollowUp) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
