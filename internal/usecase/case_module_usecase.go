package usecase

import (
	"context"

	"homeo-clinic-api/internal/domain/entity"
	"homeo-clinic-api/internal/domain/repository"
	"homeo-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CaseModuleUsecase is the shared behavior of the eight one-to-one case
// sections. D is the request DTO type, E the module entity type. Get on
// a section that has never been filled in returns (nil, nil), not an
// error: an empty section is a normal state of a case record.
type CaseModuleUsecase[D any, E any] interface {
	Get(ctx context.Context, patientID string) (*E, error)
	Put(ctx context.Context, userID *uuid.UUID, patientID string, req *D) (*E, error)
}

type caseModuleUsecase[D any, E any] struct {
	db           *gorm.DB
	log          *logrus.Logger
	module       string
	moduleRepo   repository.CaseModuleRepository[E]
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	convert      func(*D, uuid.UUID) *E
}

func NewCaseModuleUsecase[D any, E any](
	db *gorm.DB,
	log *logrus.Logger,
	module string,
	moduleRepo repository.CaseModuleRepository[E],
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	convert func(*D, uuid.UUID) *E,
) CaseModuleUsecase[D, E] {
	return &caseModuleUsecase[D, E]{
		db:           db,
		log:          log,
		module:       module,
		moduleRepo:   moduleRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
		convert:      convert,
	}
}

func (u *caseModuleUsecase[D, E]) Get(ctx context.Context, patientID string) (*E, error) {
	patient, err := u.patientRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record, err := u.moduleRepo.FindByPatientID(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to load %s record: %+v", u.module, err)
		return nil, err
	}

	return record, nil
}

// Put is a full replace: the stored record ends up exactly as the
// request describes it, whether or not one existed before. Repeated
// identical requests converge on the same single row.
func (u *caseModuleUsecase[D, E]) Put(ctx context.Context, userID *uuid.UUID, patientID string, req *D) (*E, error) {
	patient, err := u.patientRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record := u.convert(req, patient.ID)
	if err := u.moduleRepo.Upsert(ctx, u.db, record); err != nil {
		u.log.Warnf("Failed to upsert %s record: %+v", u.module, err)
		return nil, err
	}

	// Re-read so timestamps and the row ID reflect what is stored
	stored, err := u.moduleRepo.FindByPatientID(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to reload %s record: %+v", u.module, err)
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, u.db, userID, entity.AuditActionModuleUpsert(u.module), u.module, patient.PatientID, nil, stored)

	return stored, nil
}
