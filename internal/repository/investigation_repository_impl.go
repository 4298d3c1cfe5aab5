package repository

import (
	"context"
	"errors"

	"homeo-clinic-api/internal/domain/entity"
	domainRepo "homeo-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type investigationRepository struct{}

func NewInvestigationRepository() domainRepo.InvestigationRepository {
	return &investigationRepository{}
}

func (r *investigationRepository) Create(ctx context.Context, db *gorm.DB, investigation *entity.Investigation) error {
	return db.WithContext(ctx).Create(investigation).Error
}

func (r *investigationRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Investigation, error) {
	var investigation entity.Investigation
	err := db.WithContext(ctx).Where("id = ?", id).First(&investigation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &investigation, nil
}

func (r *investigationRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Investigation, error) {
	var investigations []entity.Investigation
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&investigations).Error
	if err != nil {
		return nil, err
	}
	return investigations, nil
}

func (r *investigationRepository) Update(ctx context.Context, db *gorm.DB, investigation *entity.Investigation) error {
	return db.WithContext(ctx).Omit("Patient").Save(investigation).Error
}

func (r *investigationRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Investigation{})
	return result.RowsAffected, result.Error
}
