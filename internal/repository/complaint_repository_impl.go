package repository

import (
	"context"

	"homeo-clinic-api/internal/domain/entity"
	domainRepo "homeo-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type complaintRepository struct{}

func NewComplaintRepository() domainRepo.ComplaintRepository {
	return &complaintRepository{}
}

func (r *complaintRepository) Create(ctx context.Context, db *gorm.DB, complaint *entity.Complaint) error {
	return db.WithContext(ctx).Create(complaint).Error
}

func (r *complaintRepository) MaxComplaintNo(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (int, error) {
	var maxNo int
	err := db.WithContext(ctx).
		Model(&entity.Complaint{}).
		Where("patient_id = ?", patientID).
		Select("COALESCE(MAX(complaint_no), 0)").
		Scan(&maxNo).Error
	if err != nil {
		return 0, err
	}
	return maxNo, nil
}

func (r *complaintRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Complaint, error) {
	var complaints []entity.Complaint
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("complaint_no ASC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.ComplaintFilter) ([]entity.Complaint, int64, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&entity.Complaint{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	query := db.WithContext(ctx).Model(&entity.Complaint{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("complaint_text ILIKE ? OR location ILIKE ? OR sensation ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
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

	var complaints []entity.Complaint
	err := query.
		Order(filter.SortClause()).
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&complaints).Error
	if err != nil {
		return nil, 0, 0, err
	}

	return complaints, total, filtered, nil
}
