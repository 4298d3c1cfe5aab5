package handler

import (
	"encoding/json"
	"net/http"

	"homeo-clinic-api/internal/usecase"
	"homeo-clinic-api/pkg/response"
	"homeo-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
)

// CaseModuleHandler serves one of the eight one-to-one case sections.
// All eight share the same GET/PUT shape; only the DTO and entity types
// differ, so one generic handler covers them.
type CaseModuleHandler[D any, E any] struct {
	moduleUsecase usecase.CaseModuleUsecase[D, E]
	validator     *validator.CustomValidator
}

func NewCaseModuleHandler[D any, E any](moduleUsecase usecase.CaseModuleUsecase[D, E], validator *validator.CustomValidator) *CaseModuleHandler[D, E] {
	return &CaseModuleHandler[D, E]{
		moduleUsecase: moduleUsecase,
		validator:     validator,
	}
}

// Get returns the stored section. A section that has never been filled
// in comes back as a 200 with null data, not a 404: the patient exists,
// the section is just empty.
func (h *CaseModuleHandler[D, E]) Get(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	record, err := h.moduleUsecase.Get(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get record")
		}
		return
	}

	if record == nil {
		response.Success(w, http.StatusOK, "Record not filled in yet", nil)
		return
	}

	response.Success(w, http.StatusOK, "Record retrieved successfully", record)
}

// Put stores the section as sent, replacing any previous version in full.
func (h *CaseModuleHandler[D, E]) Put(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	var req D
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.moduleUsecase.Put(r.Context(), userIDFromContext(r), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to save record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Record saved successfully", record)
}

// CaseModuleRoute pairs a URL slug with the handlers serving it. The
// router ranges over these instead of spelling out eight near-identical
// registrations.
type CaseModuleRoute struct {
	Path string
	Get  http.HandlerFunc
	Put  http.HandlerFunc
}
