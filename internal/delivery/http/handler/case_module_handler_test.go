package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
	"homeo-clinic-api/internal/usecase"
	"homeo-clinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type fakeDigestionUsecase struct {
	record *entity.Digestion
	getErr error
	putErr error
}

func (f *fakeDigestionUsecase) Get(ctx context.Context, patientID string) (*entity.Digestion, error) {
	return f.record, f.getErr
}

func (f *fakeDigestionUsecase) Put(ctx context.Context, userID *uuid.UUID, patientID string, req *dto.DigestionRequest) (*entity.Digestion, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.record = &entity.Digestion{Appetite: req.Appetite}
	return f.record, nil
}

func moduleRequest(method, path, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	return mux.SetURLVars(r, map[string]string{"patientId": "PT-001"})
}

func TestCaseModuleGetEmptyReturnsOKWithNullData(t *testing.T) {
	h := NewCaseModuleHandler[dto.DigestionRequest, entity.Digestion](&fakeDigestionUsecase{}, validator.NewValidator())

	w := httptest.NewRecorder()
	h.Get(w, moduleRequest(http.MethodGet, "/api/user/patients/PT-001/digestion", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeResponse(t, w)
	if !resp.Success {
		t.Error("empty section reported as failure")
	}
	if resp.Data != nil {
		t.Errorf("data = %v, want null", resp.Data)
	}
}

func TestCaseModuleGetUnknownPatient(t *testing.T) {
	h := NewCaseModuleHandler[dto.DigestionRequest, entity.Digestion](&fakeDigestionUsecase{getErr: usecase.ErrPatientNotFound}, validator.NewValidator())

	w := httptest.NewRecorder()
	h.Get(w, moduleRequest(http.MethodGet, "/api/user/patients/PT-001/digestion", ""))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCaseModulePutReturnsStoredRecord(t *testing.T) {
	fake := &fakeDigestionUsecase{}
	h := NewCaseModuleHandler[dto.DigestionRequest, entity.Digestion](fake, validator.NewValidator())

	w := httptest.NewRecorder()
	h.Put(w, moduleRequest(http.MethodPut, "/api/user/patients/PT-001/digestion", `{"appetite": "reduced"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if fake.record == nil || fake.record.Appetite != "reduced" {
		t.Errorf("stored record: %+v", fake.record)
	}
}

func TestCaseModulePutRejectsMalformedBody(t *testing.T) {
	h := NewCaseModuleHandler[dto.DigestionRequest, entity.Digestion](&fakeDigestionUsecase{}, validator.NewValidator())

	w := httptest.NewRecorder()
	h.Put(w, moduleRequest(http.MethodPut, "/api/user/patients/PT-001/digestion", `{"appetite": `))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
