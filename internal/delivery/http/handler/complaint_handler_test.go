package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
	"homeo-clinic-api/internal/usecase"
	"homeo-clinic-api/pkg/response"
	"homeo-clinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type fakeComplaintUsecase struct {
	createErr error
	created   *dto.ComplaintResponse
	listErr   error
}

func (f *fakeComplaintUsecase) Create(ctx context.Context, userID *uuid.UUID, req *dto.CreateComplaintRequest) (*dto.ComplaintResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeComplaintUsecase) ListByPatient(ctx context.Context, patientID string) ([]dto.ComplaintResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []dto.ComplaintResponse{}, nil
}

func (f *fakeComplaintUsecase) List(ctx context.Context, filter *entity.ComplaintFilter) ([]dto.ComplaintResponse, *response.Pagination, error) {
	return []dto.ComplaintResponse{}, response.NewPagination(filter.Page, filter.Limit, 0, 0), nil
}

func complaintBody() string {
	return `{
		"patient_id": "` + uuid.NewString() + `",
		"complaint_text": "headache",
		"location": "right temple",
		"sensation": "throbbing",
		"concomitants": "nausea"
	}`
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestComplaintCreateStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		usecaseErr error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"unknown patient", usecase.ErrPatientNotFound, http.StatusNotFound},
		{"numbering conflict", usecase.ErrComplaintConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewComplaintHandler(&fakeComplaintUsecase{
				createErr: tt.usecaseErr,
				created:   &dto.ComplaintResponse{ComplaintNo: 1},
			}, validator.NewValidator())

			r := httptest.NewRequest(http.MethodPost, "/api/user/new-complaint", strings.NewReader(complaintBody()))
			w := httptest.NewRecorder()
			h.Create(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestComplaintCreateRejectsMissingFields(t *testing.T) {
	h := NewComplaintHandler(&fakeComplaintUsecase{}, validator.NewValidator())

	r := httptest.NewRequest(http.MethodPost, "/api/user/new-complaint", strings.NewReader(`{"complaint_text": "headache"}`))
	w := httptest.NewRecorder()
	h.Create(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Success {
		t.Error("validation failure marked success")
	}
}

func TestComplaintListByPatientNotFound(t *testing.T) {
	h := NewComplaintHandler(&fakeComplaintUsecase{listErr: usecase.ErrPatientNotFound}, validator.NewValidator())

	r := httptest.NewRequest(http.MethodGet, "/api/user/complaint/PT-999", nil)
	r = mux.SetURLVars(r, map[string]string{"patientId": "PT-999"})
	w := httptest.NewRecorder()
	h.ListByPatient(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
