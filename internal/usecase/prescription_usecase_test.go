package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

func newPrescriptionFixture() (*fakePrescriptionRepo, PrescriptionUsecase, *entity.Patient) {
	patientRepo := newFakePatientRepo()
	patient := &entity.Patient{ID: uuid.New(), PatientID: "PT-001", Name: "Asha", Age: 34, Sex: entity.SexFemale}
	patientRepo.add(patient)

	prescriptionRepo := newFakePrescriptionRepo()
	uc := NewPrescriptionUsecase(nil, testLogger(), prescriptionRepo, patientRepo, &fakeAuditService{})
	return prescriptionRepo, uc, patient
}

func prescriptionReq(patientID uuid.UUID) *dto.CreatePrescriptionRequest {
	return &dto.CreatePrescriptionRequest{
		PatientID: patientID,
		Medicines: []dto.MedicineRequest{
			{Name: "Nux Vomica", Potency: "30C", Dosage: "3 pills", Frequency: "twice daily"},
		},
		Date:      "2026-08-20",
		NextVisit: "2026-09-03",
	}
}

func TestPrescriptionCreate(t *testing.T) {
	repo, uc, patient := newPrescriptionFixture()

	got, err := uc.Create(context.Background(), nil, prescriptionReq(patient.ID))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Medicines) != 1 || got.Medicines[0].Name != "Nux Vomica" {
		t.Errorf("medicines: %+v", got.Medicines)
	}
	if !got.Date.Equal(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", got.Date)
	}
	if got.NextVisit == nil {
		t.Error("next visit dropped")
	}
	if len(repo.prescriptions) != 1 {
		t.Errorf("stored %d prescriptions", len(repo.prescriptions))
	}
}

func TestPrescriptionCreateDefaultsDateToToday(t *testing.T) {
	_, uc, patient := newPrescriptionFixture()

	req := prescriptionReq(patient.ID)
	req.Date = ""
	req.NextVisit = ""

	got, err := uc.Create(context.Background(), nil, req)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	if got.Date.Year() != now.Year() || got.Date.YearDay() != now.YearDay() {
		t.Errorf("default date = %v, want today", got.Date)
	}
	if got.NextVisit != nil {
		t.Errorf("empty next visit stored as %v", got.NextVisit)
	}
}

func TestPrescriptionCreateBadDate(t *testing.T) {
	_, uc, patient := newPrescriptionFixture()

	req := prescriptionReq(patient.ID)
	req.Date = "20-08-2026"

	_, err := uc.Create(context.Background(), nil, req)
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("got %v, want ErrInvalidDateFormat", err)
	}
}

func TestPrescriptionCreateUnknownPatient(t *testing.T) {
	_, uc, _ := newPrescriptionFixture()

	_, err := uc.Create(context.Background(), nil, prescriptionReq(uuid.New()))
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("got %v, want ErrPatientNotFound", err)
	}
}

func TestPrescriptionUpdateReplacesMedicines(t *testing.T) {
	_, uc, patient := newPrescriptionFixture()

	created, err := uc.Create(context.Background(), nil, prescriptionReq(patient.ID))
	if err != nil {
		t.Fatal(err)
	}

	got, err := uc.Update(context.Background(), nil, created.ID, &dto.UpdatePrescriptionRequest{
		Medicines: []dto.MedicineRequest{
			{Name: "Sulphur", Potency: "200C"},
			{Name: "Arnica", Potency: "30C"},
		},
		Date: "2026-08-25",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Medicines) != 2 || got.Medicines[0].Name != "Sulphur" {
		t.Errorf("medicines after update: %+v", got.Medicines)
	}
}

func TestPrescriptionUpdateNotFound(t *testing.T) {
	_, uc, _ := newPrescriptionFixture()

	_, err := uc.Update(context.Background(), nil, uuid.New(), &dto.UpdatePrescriptionRequest{
		Medicines: []dto.MedicineRequest{{Name: "Sulphur"}},
	})
	if !errors.Is(err, ErrPrescriptionNotFound) {
		t.Fatalf("got %v, want ErrPrescriptionNotFound", err)
	}
}

func TestPrescriptionDelete(t *testing.T) {
	repo, uc, patient := newPrescriptionFixture()

	created, err := uc.Create(context.Background(), nil, prescriptionReq(patient.ID))
	if err != nil {
		t.Fatal(err)
	}

	if err := uc.Delete(context.Background(), nil, created.ID); err != nil {
		t.Fatal(err)
	}
	if len(repo.prescriptions) != 0 {
		t.Error("prescription not removed")
	}

	if err := uc.Delete(context.Background(), nil, created.ID); !errors.Is(err, ErrPrescriptionNotFound) {
		t.Errorf("second delete: got %v, want ErrPrescriptionNotFound", err)
	}
}
