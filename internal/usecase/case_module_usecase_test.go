package usecase

import (
	"context"
	"errors"
	"testing"

	"homeo-clinic-api/internal/converter"
	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

func newDigestionFixture() (*fakeCaseModuleRepo[entity.Digestion], CaseModuleUsecase[dto.DigestionRequest, entity.Digestion], *entity.Patient) {
	patientRepo := newFakePatientRepo()
	patient := &entity.Patient{ID: uuid.New(), PatientID: "PT-001", Name: "Asha", Age: 34, Sex: entity.SexFemale}
	patientRepo.add(patient)

	moduleRepo := &fakeCaseModuleRepo[entity.Digestion]{
		records: make(map[uuid.UUID]*entity.Digestion),
		keyOf:   func(d *entity.Digestion) uuid.UUID { return d.PatientID },
	}
	uc := NewCaseModuleUsecase(nil, testLogger(), "digestion", moduleRepo, patientRepo, &fakeAuditService{}, converter.DigestionFromRequest)
	return moduleRepo, uc, patient
}

func TestCaseModuleGetEmptySection(t *testing.T) {
	_, uc, patient := newDigestionFixture()

	record, err := uc.Get(context.Background(), patient.PatientID)
	if err != nil {
		t.Fatal(err)
	}
	if record != nil {
		t.Fatalf("expected nil for an unfilled section, got %+v", record)
	}
}

func TestCaseModuleGetUnknownPatient(t *testing.T) {
	_, uc, _ := newDigestionFixture()

	_, err := uc.Get(context.Background(), "PT-999")
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("got %v, want ErrPatientNotFound", err)
	}
}

func TestCaseModulePutCreatesThenReplaces(t *testing.T) {
	repo, uc, patient := newDigestionFixture()

	first, err := uc.Put(context.Background(), nil, patient.PatientID, &dto.DigestionRequest{
		Appetite:     "reduced",
		Acidity:      "after meals",
		FoodCravings: "sweets",
	})
	if err != nil {
		t.Fatal(err)
	}
	if first.Appetite != "reduced" || first.FoodCravings != "sweets" {
		t.Fatalf("stored record does not match request: %+v", first)
	}

	// Second Put omits FoodCravings: full replace must clear it
	second, err := uc.Put(context.Background(), nil, patient.PatientID, &dto.DigestionRequest{
		Appetite: "normal",
	})
	if err != nil {
		t.Fatal(err)
	}
	if second.Appetite != "normal" {
		t.Errorf("appetite not replaced: %q", second.Appetite)
	}
	if second.FoodCravings != "" {
		t.Errorf("omitted field survived the replace: %q", second.FoodCravings)
	}
	if len(repo.records) != 1 {
		t.Errorf("patient has %d digestion records, want 1", len(repo.records))
	}
}

func TestCaseModulePutIsIdempotent(t *testing.T) {
	repo, uc, patient := newDigestionFixture()
	req := &dto.DigestionRequest{Appetite: "normal", BowelHabit: "regular"}

	first, err := uc.Put(context.Background(), nil, patient.PatientID, req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := uc.Put(context.Background(), nil, patient.PatientID, req)
	if err != nil {
		t.Fatal(err)
	}

	if first.Appetite != second.Appetite || first.BowelHabit != second.BowelHabit {
		t.Error("repeated identical Put produced different records")
	}
	if len(repo.records) != 1 {
		t.Errorf("patient has %d digestion records, want 1", len(repo.records))
	}
	if repo.upserts != 2 {
		t.Errorf("repo saw %d upserts, want 2", repo.upserts)
	}
}

func TestCaseModulePutUnknownPatient(t *testing.T) {
	_, uc, _ := newDigestionFixture()

	_, err := uc.Put(context.Background(), nil, "PT-999", &dto.DigestionRequest{Appetite: "normal"})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("got %v, want ErrPatientNotFound", err)
	}
}

func TestCaseModulePutThenGetRoundTrip(t *testing.T) {
	_, uc, patient := newDigestionFixture()

	if _, err := uc.Put(context.Background(), nil, patient.PatientID, &dto.DigestionRequest{Intolerances: "milk"}); err != nil {
		t.Fatal(err)
	}

	record, err := uc.Get(context.Background(), patient.PatientID)
	if err != nil {
		t.Fatal(err)
	}
	if record == nil || record.Intolerances != "milk" {
		t.Fatalf("Get after Put returned %+v", record)
	}
}
