package usecase

import (
	"context"
	"errors"
	"testing"

	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

func newComplaintFixture() (*fakePatientRepo, *fakeComplaintRepo, ComplaintUsecase, *entity.Patient) {
	patientRepo := newFakePatientRepo()
	patient := &entity.Patient{ID: uuid.New(), PatientID: "PT-001", Name: "Asha", Age: 34, Sex: entity.SexFemale}
	patientRepo.add(patient)

	complaintRepo := &fakeComplaintRepo{}
	uc := NewComplaintUsecase(nil, testLogger(), complaintRepo, patientRepo, &fakeAuditService{})
	return patientRepo, complaintRepo, uc, patient
}

func createReq(patientID uuid.UUID) *dto.CreateComplaintRequest {
	return &dto.CreateComplaintRequest{
		PatientID:     patientID,
		ComplaintText: "throbbing headache, worse in the morning",
		Location:      "right temple",
		Sensation:     "throbbing",
		Concomitants:  "nausea",
		Severity:      entity.SeverityModerate,
	}
}

func TestComplaintCreateAssignsSequentialNumbers(t *testing.T) {
	_, repo, uc, patient := newComplaintFixture()

	for want := 1; want <= 3; want++ {
		got, err := uc.Create(context.Background(), nil, createReq(patient.ID))
		if err != nil {
			t.Fatalf("Create #%d: %v", want, err)
		}
		if got.ComplaintNo != want {
			t.Errorf("complaint %d: got number %d", want, got.ComplaintNo)
		}
	}

	if len(repo.complaints) != 3 {
		t.Fatalf("stored %d complaints, want 3", len(repo.complaints))
	}
}

func TestComplaintCreateNumbersArePerPatient(t *testing.T) {
	patientRepo, _, uc, first := newComplaintFixture()
	second := &entity.Patient{ID: uuid.New(), PatientID: "PT-002", Name: "Ravi", Age: 51, Sex: entity.SexMale}
	patientRepo.add(second)

	if _, err := uc.Create(context.Background(), nil, createReq(first.ID)); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Create(context.Background(), nil, createReq(first.ID)); err != nil {
		t.Fatal(err)
	}

	got, err := uc.Create(context.Background(), nil, createReq(second.ID))
	if err != nil {
		t.Fatal(err)
	}
	if got.ComplaintNo != 1 {
		t.Errorf("second patient's first complaint numbered %d, want 1", got.ComplaintNo)
	}
}

func TestComplaintCreateRetriesOnDuplicateNumber(t *testing.T) {
	_, repo, uc, patient := newComplaintFixture()
	repo.failures = []error{duplicateKeyErr("idx_complaints_patient_no")}

	got, err := uc.Create(context.Background(), nil, createReq(patient.ID))
	if err != nil {
		t.Fatalf("Create after one collision: %v", err)
	}
	if got.ComplaintNo != 1 {
		t.Errorf("got number %d, want 1", got.ComplaintNo)
	}
	if repo.creates != 2 {
		t.Errorf("repo saw %d create attempts, want 2", repo.creates)
	}
}

func TestComplaintCreateGivesUpAfterRepeatedCollisions(t *testing.T) {
	_, repo, uc, patient := newComplaintFixture()
	repo.failures = []error{
		duplicateKeyErr("idx_complaints_patient_no"),
		duplicateKeyErr("idx_complaints_patient_no"),
		duplicateKeyErr("idx_complaints_patient_no"),
	}

	_, err := uc.Create(context.Background(), nil, createReq(patient.ID))
	if !errors.Is(err, ErrComplaintConflict) {
		t.Fatalf("got %v, want ErrComplaintConflict", err)
	}
	if repo.creates != complaintNoRetries {
		t.Errorf("repo saw %d create attempts, want %d", repo.creates, complaintNoRetries)
	}
}

func TestComplaintCreateUnknownPatient(t *testing.T) {
	_, _, uc, _ := newComplaintFixture()

	_, err := uc.Create(context.Background(), nil, createReq(uuid.New()))
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("got %v, want ErrPatientNotFound", err)
	}
}

func TestComplaintCreateDoesNotRetryOtherErrors(t *testing.T) {
	_, repo, uc, patient := newComplaintFixture()
	repo.failures = []error{errors.New("connection reset")}

	_, err := uc.Create(context.Background(), nil, createReq(patient.ID))
	if err == nil || errors.Is(err, ErrComplaintConflict) {
		t.Fatalf("got %v, want the underlying error", err)
	}
	if repo.creates != 1 {
		t.Errorf("repo saw %d create attempts, want 1", repo.creates)
	}
}

func TestComplaintListByPatientUnknownPatient(t *testing.T) {
	_, _, uc, _ := newComplaintFixture()

	_, err := uc.ListByPatient(context.Background(), "PT-999")
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("got %v, want ErrPatientNotFound", err)
	}
}
