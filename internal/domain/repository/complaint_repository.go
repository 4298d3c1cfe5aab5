package repository

import (
	"context"

	"homeo-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplaintRepository interface {
	Create(ctx context.Context, db *gorm.DB, complaint *entity.Complaint) error
	// MaxComplaintNo returns the highest complaint number assigned to the
	// patient so far, 0 when the patient has no complaints.
	MaxComplaintNo(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (int, error)
	// FindByPatientID returns all complaints for a patient ordered by
	// complaint_no ascending.
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Complaint, error)
	// Search returns one page plus the unfiltered and filtered totals.
	Search(ctx context.Context, db *gorm.DB, filter *entity.ComplaintFilter) ([]entity.Complaint, int64, int64, error)
}
