package usecase

import (
	"context"
	"time"

	"homeo-clinic-api/internal/converter"
	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
	"homeo-clinic-api/internal/domain/repository"
	"homeo-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, userID *uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	ListByPatient(ctx context.Context, patientID string) ([]dto.PrescriptionResponse, error)
	Update(ctx context.Context, userID *uuid.UUID, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Delete(ctx context.Context, userID *uuid.UUID, id uuid.UUID) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		auditService:     auditService,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, userID *uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
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
	nextVisit, err := parseOptionalDate(req.NextVisit)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	prescription := &entity.Prescription{
		PatientID:     req.PatientID,
		Medicines:     converter.MedicinesFromRequests(req.Medicines),
		Reason:        req.Reason,
		FollowUpNotes: req.FollowUpNotes,
		Date:          date,
		NextVisit:     nextVisit,
	}

	if err := u.prescriptionRepo.Create(ctx, u.db, prescription); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, u.db, userID, entity.AuditActionPrescriptionCreate, "prescription", prescription.ID.String(), prescription)

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) ListByPatient(ctx context.Context, patientID string) ([]dto.PrescriptionResponse, error) {
	patient, err := u.patientRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	prescriptions, err := u.prescriptionRepo.FindByPatientID(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, userID *uuid.UUID, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	old := *prescription

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	nextVisit, err := parseOptionalDate(req.NextVisit)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	prescription.Medicines = converter.MedicinesFromRequests(req.Medicines)
	prescription.Reason = req.Reason
	prescription.FollowUpNotes = req.FollowUpNotes
	prescription.Date = date
	prescription.NextVisit = nextVisit

	if err := u.prescriptionRepo.Update(ctx, u.db, prescription); err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, u.db, userID, entity.AuditActionPrescriptionUpdate, "prescription", prescription.ID.String(), old, prescription)

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) Delete(ctx context.Context, userID *uuid.UUID, id uuid.UUID) error {
	prescription, err := u.prescriptionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return err
	}
	if prescription == nil {
		return ErrPrescriptionNotFound
	}

	rows, err := u.prescriptionRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete prescription: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPrescriptionNotFound
	}

	_ = u.auditService.LogDelete(ctx, u.db, userID, entity.AuditActionPrescriptionDelete, "prescription", id.String(), prescription)

	return nil
}

// parseDateOrToday accepts an empty date as today, otherwise YYYY-MM-DD.
func parseDateOrToday(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.Parse("2006-01-02", value)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
