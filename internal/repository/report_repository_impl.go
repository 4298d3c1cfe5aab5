package repository

import (
	"context"
	"time"

	"homeo-clinic-api/internal/domain/entity"
	domainRepo "homeo-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

type groupCount struct {
	Key   string
	Count int64
}

func (r *reportRepository) CountPatients(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error
	return total, err
}

func (r *reportRepository) CountPatientsBySex(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	var rows []groupCount
	err := db.WithContext(ctx).
		Model(&entity.Patient{}).
		Select("sex AS key, COUNT(*) AS count").
		Group("sex").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return groupCountsToMap(rows), nil
}

func (r *reportRepository) CountComplaints(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Complaint{}).Count(&total).Error
	return total, err
}

func (r *reportRepository) CountComplaintsBySeverity(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	var rows []groupCount
	err := db.WithContext(ctx).
		Model(&entity.Complaint{}).
		Select("COALESCE(NULLIF(severity, ''), 'Unspecified') AS key, COUNT(*) AS count").
		Group("key").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return groupCountsToMap(rows), nil
}

func (r *reportRepository) CountPrescriptionsSince(ctx context.Context, db *gorm.DB, since time.Time) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&entity.Prescription{}).
		Where("date >= ?", since).
		Count(&total).Error
	return total, err
}

func (r *reportRepository) CountFollowUpsDueBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&entity.FollowUp{}).
		Where("next_visit_date >= ? AND next_visit_date <= ?", from, to).
		Count(&total).Error
	return total, err
}

func groupCountsToMap(rows []groupCount) map[string]int64 {
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Count
	}
	return result
}
