package usecase

import (
	"context"

	"homeo-clinic-api/internal/converter"
	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
	"homeo-clinic-api/internal/domain/repository"
	"homeo-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FollowUpUsecase interface {
	Create(ctx context.Context, userID *uuid.UUID, patientID string, req *dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error)
	ListByPatient(ctx context.Context, patientID string) ([]dto.FollowUpResponse, error)
	Update(ctx context.Context, userID *uuid.UUID, id uuid.UUID, req *dto.UpdateFollowUpRequest) (*dto.FollowUpResponse, error)
	Delete(ctx context.Context, userID *uuid.UUID, id uuid.UUID) error
}

type followUpUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	followUpRepo repository.FollowUpRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewFollowUpUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	followUpRepo repository.FollowUpRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) FollowUpUsecase {
	return &followUpUsecase{
		db:           db,
		log:          log,
		followUpRepo: followUpRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *followUpUsecase) Create(ctx context.Context, userID *uuid.UUID, patientID string, req *dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error) {
	patient, err := u.patientRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	nextVisit, err := parseOptionalDate(req.NextVisitDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	followUp := &entity.FollowUp{
		PatientID:      patient.ID,
		PrescriptionID: req.PrescriptionID,
		Date:           date,
		PatientState:   req.PatientState,
		Assessment:     req.Assessment,
		NextVisitDate:  nextVisit,
	}

	if err := u.followUpRepo.Create(ctx, u.db, followUp); err != nil {
		if isForeignKeyError(err, "prescription") {
			return nil, ErrPrescriptionNotFound
		}
		u.log.Warnf("Failed to create follow-up: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, u.db, userID, entity.AuditActionFollowUpCreate, "followup", followUp.ID.String(), followUp)

	return converter.FollowUpToResponse(followUp), nil
}

func (u *followUpUsecase) ListByPatient(ctx context.Context, patientID string) ([]dto.FollowUpResponse, error) {
	patient, err := u.patientRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	followUps, err := u.followUpRepo.FindByPatientID(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list follow-ups: %+v", err)
		return nil, err
	}

	return converter.FollowUpsToResponses(followUps), nil
}

func (u *followUpUsecase) Update(ctx context.Context, userID *uuid.UUID, id uuid.UUID, req *dto.UpdateFollowUpRequest) (*dto.FollowUpResponse, error) {
	followUp, err := u.followUpRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find follow-up: %+v", err)
		return nil, err
	}
	if followUp == nil {
		return nil, ErrFollowUpNotFound
	}

	old := *followUp

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	nextVisit, err := parseOptionalDate(req.NextVisitDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	followUp.PrescriptionID = req.PrescriptionID
	followUp.Date = date
	followUp.PatientState = req.PatientState
	followUp.Assessment = req.Assessment
	followUp.NextVisitDate = nextVisit

	if err := u.followUpRepo.Update(ctx, u.db, followUp); err != nil {
		if isForeignKeyError(err, "prescription") {
			return nil, ErrPrescriptionNotFound
		}
		u.log.Warnf("Failed to update follow-up: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, u.db, userID, entity.AuditActionFollowUpUpdate, "followup", followUp.ID.String(), old, followUp)

	return converter.FollowUpToResponse(followUp), nil
}

func (u *followUpUsecase) Delete(ctx context.Context, userID *uuid.UUID, id uuid.UUID) error {
	followUp, err := u.followUpRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find follow-up: %+v", err)
		return err
	}
	if followUp == nil {
		return ErrFollowUpNotFound
	}

	rows, err := u.followUpRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete follow-up: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrFollowUpNotFound
	}

	_ = u.auditService.LogDelete(ctx, u.db, userID, entity.AuditActionFollowUpDelete, "followup", id.String(), followUp)

	return nil
}
