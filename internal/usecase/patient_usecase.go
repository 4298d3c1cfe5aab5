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

type PatientUsecase interface {
	Create(ctx context.Context, userID *uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetByPatientID(ctx context.Context, patientID string) (*dto.PatientResponse, error)
	Update(ctx context.Context, userID *uuid.UUID, patientID string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, filter *entity.PatientFilter) ([]dto.PatientResponse, *response.Pagination, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) Create(ctx context.Context, userID *uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		PatientID:     req.PatientID,
		Name:          req.Name,
		Age:           *req.Age,
		Sex:           req.Sex,
		MaritalStatus: req.MaritalStatus,
		Diet:          req.Diet,
		Education:     req.Education,
		Occupation:    req.Occupation,
		Address:       req.Address,
		Summary:       req.Summary,
		ReferredBy:    req.ReferredBy,
		MobileNo:      req.MobileNo,
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		if isDuplicateKeyError(err, "patient_id") {
			return nil, ErrPatientIDExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	// Audit failures never fail the request
	_ = u.auditService.LogCreate(ctx, u.db, userID, entity.AuditActionPatientCreate, "patient", patient.PatientID, patient)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetByPatientID(ctx context.Context, patientID string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, userID *uuid.UUID, patientID string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	old := *patient

	patient.Name = req.Name
	patient.Age = *req.Age
	patient.Sex = req.Sex
	patient.MaritalStatus = req.MaritalStatus
	patient.Diet = req.Diet
	patient.Education = req.Education
	patient.Occupation = req.Occupation
	patient.Address = req.Address
	patient.Summary = req.Summary
	patient.ReferredBy = req.ReferredBy
	patient.MobileNo = req.MobileNo

	if err := u.patientRepo.Update(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, u.db, userID, entity.AuditActionPatientUpdate, "patient", patient.PatientID, old, patient)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, filter *entity.PatientFilter) ([]dto.PatientResponse, *response.Pagination, error) {
	filter.Normalize()

	patients, total, filtered, err := u.patientRepo.Search(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, nil, err
	}

	pagination := response.NewPagination(filter.Page, filter.Limit, total, filtered)
	return converter.PatientsToResponses(patients), pagination, nil
}
