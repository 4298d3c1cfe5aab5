package usecase

import (
	"context"
	"time"

	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReportUsecase interface {
	Overview(ctx context.Context) (*dto.OverviewReportResponse, error)
}

type reportUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	reportRepo repository.ReportRepository
}

func NewReportUsecase(db *gorm.DB, log *logrus.Logger, reportRepo repository.ReportRepository) ReportUsecase {
	return &reportUsecase{
		db:         db,
		log:        log,
		reportRepo: reportRepo,
	}
}

func (u *reportUsecase) Overview(ctx context.Context) (*dto.OverviewReportResponse, error) {
	totalPatients, err := u.reportRepo.CountPatients(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	patientsBySex, err := u.reportRepo.CountPatientsBySex(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count patients by sex: %+v", err)
		return nil, err
	}

	totalComplaints, err := u.reportRepo.CountComplaints(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count complaints: %+v", err)
		return nil, err
	}

	complaintsBySeverity, err := u.reportRepo.CountComplaintsBySeverity(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count complaints by severity: %+v", err)
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	prescriptionsThisMonth, err := u.reportRepo.CountPrescriptionsSince(ctx, u.db, monthStart)
	if err != nil {
		u.log.Warnf("Failed to count prescriptions: %+v", err)
		return nil, err
	}

	followUpsDue, err := u.reportRepo.CountFollowUpsDueBetween(ctx, u.db, now, now.AddDate(0, 0, 7))
	if err != nil {
		u.log.Warnf("Failed to count due follow-ups: %+v", err)
		return nil, err
	}

	return &dto.OverviewReportResponse{
		TotalPatients:          totalPatients,
		PatientsBySex:          patientsBySex,
		TotalComplaints:        totalComplaints,
		ComplaintsBySeverity:   complaintsBySeverity,
		PrescriptionsThisMonth: prescriptionsThisMonth,
		FollowUpsDueNext7Days:  followUpsDue,
	}, nil
}
