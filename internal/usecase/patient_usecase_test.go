package usecase

import (
	"context"
	"errors"
	"testing"

	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
)

func intPtr(v int) *int { return &v }

func newPatientFixture() (*fakePatientRepo, *fakeAuditService, PatientUsecase) {
	patientRepo := newFakePatientRepo()
	audit := &fakeAuditService{}
	uc := NewPatientUsecase(nil, testLogger(), patientRepo, audit)
	return patientRepo, audit, uc
}

func TestPatientCreate(t *testing.T) {
	_, audit, uc := newPatientFixture()

	got, err := uc.Create(context.Background(), nil, &dto.CreatePatientRequest{
		PatientID: "PT-001",
		Name:      "Asha",
		Age:       intPtr(34),
		Sex:       entity.SexFemale,
		MobileNo:  "+91-9876543210",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.PatientID != "PT-001" || got.Age != 34 {
		t.Errorf("unexpected response: %+v", got)
	}
	if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionPatientCreate {
		t.Errorf("audit trail: %v", audit.actions)
	}
}

func TestPatientCreateDuplicateID(t *testing.T) {
	repo, _, uc := newPatientFixture()
	repo.createErr = duplicateKeyErr("idx_patients_patient_id")

	_, err := uc.Create(context.Background(), nil, &dto.CreatePatientRequest{
		PatientID: "PT-001",
		Name:      "Asha",
		Age:       intPtr(34),
		Sex:       entity.SexFemale,
	})
	if !errors.Is(err, ErrPatientIDExists) {
		t.Fatalf("got %v, want ErrPatientIDExists", err)
	}
}

func TestPatientGetUnknown(t *testing.T) {
	_, _, uc := newPatientFixture()

	_, err := uc.GetByPatientID(context.Background(), "PT-999")
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("got %v, want ErrPatientNotFound", err)
	}
}

func TestPatientUpdateKeepsBusinessID(t *testing.T) {
	repo, _, uc := newPatientFixture()
	patient := &entity.Patient{PatientID: "PT-001", Name: "Asha", Age: 34, Sex: entity.SexFemale}
	if err := repo.Create(context.Background(), nil, patient); err != nil {
		t.Fatal(err)
	}

	got, err := uc.Update(context.Background(), nil, "PT-001", &dto.UpdatePatientRequest{
		Name: "Asha Rao",
		Age:  intPtr(35),
		Sex:  entity.SexFemale,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.PatientID != "PT-001" {
		t.Errorf("business ID changed on update: %q", got.PatientID)
	}
	if got.Name != "Asha Rao" || got.Age != 35 {
		t.Errorf("fields not updated: %+v", got)
	}
}

func TestPatientListNormalizesPagination(t *testing.T) {
	_, _, uc := newPatientFixture()

	_, pagination, err := uc.List(context.Background(), &entity.PatientFilter{Page: -3, Limit: 9999})
	if err != nil {
		t.Fatal(err)
	}
	if pagination.Page != 1 {
		t.Errorf("page = %d, want 1", pagination.Page)
	}
	if pagination.Limit != entity.MaxPageSize {
		t.Errorf("limit = %d, want %d", pagination.Limit, entity.MaxPageSize)
	}
}
