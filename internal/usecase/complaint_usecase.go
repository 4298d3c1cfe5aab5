package usecase

import (
	"context"

	"homeo-clinic-api/internal/converter"
	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
	"homeo-clinic-api/internal/domain/repository"
	"homeo-clinic-api/internal/service"
	"homeo-clinic-api/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// complaintNoRetries bounds the read-max-then-insert loop. Two concurrent
// creators for the same patient collide on idx_complaints_patient_no and
// the loser re-reads; three rounds is plenty for a single-doctor practice.
const complaintNoRetries = 3

type ComplaintUsecase interface {
	Create(ctx context.Context, userID *uuid.UUID, req *dto.CreateComplaintRequest) (*dto.ComplaintResponse, error)
	ListByPatient(ctx context.Context, patientID string) ([]dto.ComplaintResponse, error)
	List(ctx context.Context, filter *entity.ComplaintFilter) ([]dto.ComplaintResponse, *response.Pagination, error)
}

type complaintUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	complaintRepo repository.ComplaintRepository
	patientRepo   repository.PatientRepository
	auditService  service.AuditService
}

func NewComplaintUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	complaintRepo repository.ComplaintRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) ComplaintUsecase {
	return &complaintUsecase{
		db:            db,
		log:           log,
		complaintRepo: complaintRepo,
		patientRepo:   patientRepo,
		auditService:  auditService,
	}
}

// Create assigns the next complaint number for the patient server-side.
// Any number sent by the client is ignored.
func (u *complaintUsecase) Create(ctx context.Context, userID *uuid.UUID, req *dto.CreateComplaintRequest) (*dto.ComplaintResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	var complaint *entity.Complaint
	for attempt := 0; attempt < complaintNoRetries; attempt++ {
		maxNo, err := u.complaintRepo.MaxComplaintNo(ctx, u.db, req.PatientID)
		if err != nil {
			u.log.Warnf("Failed to read max complaint number: %+v", err)
			return nil, err
		}

		complaint = &entity.Complaint{
			PatientID:     req.PatientID,
			ComplaintNo:   maxNo + 1,
			ComplaintText: req.ComplaintText,
			Location:      req.Location,
			Sensation:     req.Sensation,
			Concomitants:  req.Concomitants,
			Onset:         req.Onset,
			Aggravation:   req.Aggravation,
			Amelioration:  req.Amelioration,
			Duration:      req.Duration,
			Severity:      req.Severity,
		}

		err = u.complaintRepo.Create(ctx, u.db, complaint)
		if err == nil {
			_ = u.auditService.LogCreate(ctx, u.db, userID, entity.AuditActionComplaintCreate, "complaint", complaint.ID.String(), complaint)
			return converter.ComplaintToResponse(complaint), nil
		}
		if isDuplicateKeyError(err, "idx_complaints_patient_no") {
			// Lost the race, re-read the max and try again
			continue
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create complaint: %+v", err)
		return nil, err
	}

	return nil, ErrComplaintConflict
}

func (u *complaintUsecase) ListByPatient(ctx context.Context, patientID string) ([]dto.ComplaintResponse, error) {
	patient, err := u.patientRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	complaints, err := u.complaintRepo.FindByPatientID(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list complaints: %+v", err)
		return nil, err
	}

	return converter.ComplaintsToResponses(complaints), nil
}

func (u *complaintUsecase) List(ctx context.Context, filter *entity.ComplaintFilter) ([]dto.ComplaintResponse, *response.Pagination, error) {
	filter.Normalize()

	complaints, total, filtered, err := u.complaintRepo.Search(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to search complaints: %+v", err)
		return nil, nil, err
	}

	pagination := response.NewPagination(filter.Page, filter.Limit, total, filtered)
	return converter.ComplaintsToResponses(complaints), pagination, nil
}
