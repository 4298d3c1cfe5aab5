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

type InvestigationUsecase interface {
	Create(ctx context.Context, userID *uuid.UUID, patientID string, req *dto.CreateInvestigationRequest) (*dto.InvestigationResponse, error)
	ListByPatient(ctx context.Context, patientID string) ([]dto.InvestigationResponse, error)
	Update(ctx context.Context, userID *uuid.UUID, id uuid.UUID, req *dto.UpdateInvestigationRequest) (*dto.InvestigationResponse, error)
	Delete(ctx context.Context, userID *uuid.UUID, id uuid.UUID) error
}

type investigationUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	investigationRepo repository.InvestigationRepository
	patientRepo       repository.PatientRepository
	auditService      service.AuditService
}

func NewInvestigationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	investigationRepo repository.InvestigationRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) InvestigationUsecase {
	return &investigationUsecase{
		db:                db,
		log:               log,
		investigationRepo: investigationRepo,
		patientRepo:       patientRepo,
		auditService:      auditService,
	}
}

func (u *investigationUsecase) Create(ctx context.Context, userID *uuid.UUID, patientID string, req *dto.CreateInvestigationRequest) (*dto.InvestigationResponse, error) {
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

	investigation := &entity.Investigation{
		PatientID:  patient.ID,
		Date:       date,
		Type:       req.Type,
		Hb:         req.Hb,
		WBC:        req.WBC,
		ESR:        req.ESR,
		BloodSugar: req.BloodSugar,
		ReportText: req.ReportText,
		Results:    converter.LabResultsFromRequests(req.Results),
		Summary:    req.Summary,
	}

	if err := u.investigationRepo.Create(ctx, u.db, investigation); err != nil {
		u.log.Warnf("Failed to create investigation: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, u.db, userID, entity.AuditActionInvestigationCreate, "investigation", investigation.ID.String(), investigation)

	return converter.InvestigationToResponse(investigation), nil
}

func (u *investigationUsecase) ListByPatient(ctx context.Context, patientID string) ([]dto.InvestigationResponse, error) {
	patient, err := u.patientRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	investigations, err := u.investigationRepo.FindByPatientID(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list investigations: %+v", err)
		return nil, err
	}

	return converter.InvestigationsToResponses(investigations), nil
}

func (u *investigationUsecase) Update(ctx context.Context, userID *uuid.UUID, id uuid.UUID, req *dto.UpdateInvestigationRequest) (*dto.InvestigationResponse, error) {
	investigation, err := u.investigationRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find investigation: %+v", err)
		return nil, err
	}
	if investigation == nil {
		return nil, ErrInvestigationNotFound
	}

	old := *investigation

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	investigation.Date = date
	investigation.Type = req.Type
	investigation.Hb = req.Hb
	investigation.WBC = req.WBC
	investigation.ESR = req.ESR
	investigation.BloodSugar = req.BloodSugar
	investigation.ReportText = req.ReportText
	investigation.Results = converter.LabResultsFromRequests(req.Results)
	investigation.Summary = req.Summary

	if err := u.investigationRepo.Update(ctx, u.db, investigation); err != nil {
		u.log.Warnf("Failed to update investigation: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, u.db, userID, entity.AuditActionInvestigationUpdate, "investigation", investigation.ID.String(), old, investigation)

	return converter.InvestigationToResponse(investigation), nil
}

func (u *investigationUsecase) Delete(ctx context.Context, userID *uuid.UUID, id uuid.UUID) error {
	investigation, err := u.investigationRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find investigation: %+v", err)
		return err
	}
	if investigation == nil {
		return ErrInvestigationNotFound
	}

	rows, err := u.investigationRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete investigation: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrInvestigationNotFound
	}

	_ = u.auditService.LogDelete(ctx, u.db, userID, entity.AuditActionInvestigationDelete, "investigation", id.String(), investigation)

	return nil
}
