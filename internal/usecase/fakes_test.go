package usecase

import (
	"context"
	"io"
	"time"

	"homeo-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// The repository interfaces take the db handle as a parameter, so fakes
// can ignore it entirely and the usecases run without a database.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func duplicateKeyErr(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type fakePatientRepo struct {
	patients  map[uuid.UUID]*entity.Patient
	createErr error
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uuid.UUID]*entity.Patient)}
}

func (f *fakePatientRepo) add(patient *entity.Patient) {
	f.patients[patient.ID] = patient
}

func (f *fakePatientRepo) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	if f.createErr != nil {
		return f.createErr
	}
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = patient.CreatedAt
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	patient, ok := f.patients[id]
	if !ok {
		return nil, nil
	}
	return patient, nil
}

func (f *fakePatientRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) (*entity.Patient, error) {
	for _, patient := range f.patients {
		if patient.PatientID == patientID {
			return patient, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepo) Search(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, int64, error) {
	var out []entity.Patient
	for _, patient := range f.patients {
		out = append(out, *patient)
	}
	n := int64(len(out))
	return out, n, n, nil
}

type fakeComplaintRepo struct {
	complaints []entity.Complaint
	// failures is consumed one entry per Create call; nil entries succeed
	failures []error
	creates  int
}

func (f *fakeComplaintRepo) Create(ctx context.Context, db *gorm.DB, complaint *entity.Complaint) error {
	f.creates++
	if len(f.failures) > 0 {
		err := f.failures[0]
		f.failures = f.failures[1:]
		if err != nil {
			return err
		}
	}
	complaint.ID = uuid.New()
	complaint.CreatedAt = time.Now()
	f.complaints = append(f.complaints, *complaint)
	return nil
}

func (f *fakeComplaintRepo) MaxComplaintNo(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (int, error) {
	max := 0
	for _, c := range f.complaints {
		if c.PatientID == patientID && c.ComplaintNo > max {
			max = c.ComplaintNo
		}
	}
	return max, nil
}

func (f *fakeComplaintRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Complaint, error) {
	var out []entity.Complaint
	for _, c := range f.complaints {
		if c.PatientID == patientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComplaintRepo) Search(ctx context.Context, db *gorm.DB, filter *entity.ComplaintFilter) ([]entity.Complaint, int64, int64, error) {
	n := int64(len(f.complaints))
	return f.complaints, n, n, nil
}

// fakeCaseModuleRepo stores at most one record per patient, mirroring the
// unique index the real table carries.
type fakeCaseModuleRepo[E any] struct {
	records map[uuid.UUID]*E
	keyOf   func(*E) uuid.UUID
	upserts int
}

func (f *fakeCaseModuleRepo[E]) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (*E, error) {
	record, ok := f.records[patientID]
	if !ok {
		return nil, nil
	}
	return record, nil
}

func (f *fakeCaseModuleRepo[E]) Upsert(ctx context.Context, db *gorm.DB, record *E) error {
	f.upserts++
	f.records[f.keyOf(record)] = record
	return nil
}

type fakePrescriptionRepo struct {
	prescriptions map[uuid.UUID]*entity.Prescription
}

func newFakePrescriptionRepo() *fakePrescriptionRepo {
	return &fakePrescriptionRepo{prescriptions: make(map[uuid.UUID]*entity.Prescription)}
}

func (f *fakePrescriptionRepo) Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error {
	prescription.ID = uuid.New()
	prescription.CreatedAt = time.Now()
	prescription.UpdatedAt = prescription.CreatedAt
	f.prescriptions[prescription.ID] = prescription
	return nil
}

func (f *fakePrescriptionRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	prescription, ok := f.prescriptions[id]
	if !ok {
		return nil, nil
	}
	return prescription, nil
}

func (f *fakePrescriptionRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Prescription, error) {
	var out []entity.Prescription
	for _, p := range f.prescriptions {
		if p.PatientID == patientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePrescriptionRepo) Update(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error {
	f.prescriptions[prescription.ID] = prescription
	return nil
}

func (f *fakePrescriptionRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := f.prescriptions[id]; !ok {
		return 0, nil
	}
	delete(f.prescriptions, id)
	return 1, nil
}

type fakeAuditService struct {
	actions []string
}

func (f *fakeAuditService) LogCreate(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	f.actions = append(f.actions, action)
	return nil
}

func (f *fakeAuditService) LogUpdate(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	f.actions = append(f.actions, action)
	return nil
}

func (f *fakeAuditService) LogDelete(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) error {
	f.actions = append(f.actions, action)
	return nil
}
