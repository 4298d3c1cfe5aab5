package repository

import (
	"context"
	"errors"

	"homeo-clinic-api/internal/domain/entity"
	domainRepo "homeo-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Omit("Complaints").Save(patient).Error
}

// Search applies the filter predicate for both the filtered count and the
// page query so the two always agree. The unfiltered total is a separate
// count.
func (r *patientRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	query := db.WithContext(ctx).Model(&entity.Patient{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("patient_id ILIKE ? OR name ILIKE ? OR address ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Sex != "" {
		query = query.Where("sex = ?", filter.Sex)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}

	var filtered int64
	if err := query.Count(&filtered).Error; err != nil {
		return nil, 0, 0, err
	}

	var patients []entity.Patient
	err := query.
		Order(filter.SortClause()).
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&patients).Error
	if err != nil {
		return nil, 0, 0, err
	}

	return patients, total, filtered, nil
}
