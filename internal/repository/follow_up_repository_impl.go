package repository

import (
	"context"
	"errors"

	"homeo-clinic-api/internal/domain/entity"
	domainRepo "homeo-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type followUpRepository struct{}

func NewFollowUpRepository() domainRepo.FollowUpRepository {
	return &followUpRepository{}
}

func (r *followUpRepository) Create(ctx context.Context, db *gorm.DB, followUp *entity.FollowUp) error {
	return db.WithContext(ctx).Create(followUp).Error
}

func (r *followUpRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.FollowUp, error) {
	var followUp entity.FollowUp
	err := db.WithContext(ctx).Where("id = ?", id).First(&followUp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &followUp, nil
}

func (r *followUpRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.FollowUp, error) {
	var followUps []entity.FollowUp
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&followUps).Error
	if err != nil {
		return nil, err
	}
	return followUps, nil
}

func (r *followUpRepository) Update(ctx context.Context, db *gorm.DB, followUp *entity.FollowUp) error {
	return db.WithContext(ctx).Omit("Patient").Save(followUp).Error
}

func (r *followUpRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.FollowUp{})
	return result.RowsAffected, result.Error
}
