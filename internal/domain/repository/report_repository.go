package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ReportRepository interface {
	CountPatients(ctx context.Context, db *gorm.DB) (int64, error)
	CountPatientsBySex(ctx context.Context, db *gorm.DB) (map[string]int64, error)
	CountComplaints(ctx context.Context, db *gorm.DB) (int64, error)
	CountComplaintsBySeverity(ctx context.Context, db *gorm.DB) (map[string]int64, error)
	CountPrescriptionsSince(ctx context.Context, db *gorm.DB, since time.Time) (int64, error)
	CountFollowUpsDueBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error)
}
