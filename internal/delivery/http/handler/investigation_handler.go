package handler

import (
	"encoding/json"
	"net/http"

	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/usecase"
	"homeo-clinic-api/pkg/response"
	"homeo-clinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type InvestigationHandler struct {
	investigationUsecase usecase.InvestigationUsecase
	validator            *validator.CustomValidator
}

func NewInvestigationHandler(investigationUsecase usecase.InvestigationUsecase, validator *validator.CustomValidator) *InvestigationHandler {
	return &InvestigationHandler{
		investigationUsecase: investigationUsecase,
		validator:            validator,
	}
}

// Create attaches a lab/diagnostic report to a patient
// @Summary Record an investigation
// @Tags Investigations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param patientId path string true "Patient ID"
// @Param request body dto.CreateInvestigationRequest true "Create Investigation Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/patients/{patientId}/investigations [post]
func (h *InvestigationHandler) Create(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	var req dto.CreateInvestigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	investigation, err := h.investigationUsecase.Create(r.Context(), userIDFromContext(r), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create investigation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Investigation recorded successfully", investigation)
}

// ListByPatient returns all investigations for one patient
// @Summary List a patient's investigations
// @Tags Investigations
// @Security BearerAuth
// @Produce json
// @Param patientId path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/patients/{patientId}/investigations [get]
func (h *InvestigationHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	investigations, err := h.investigationUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list investigations")
		}
		return
	}

	response.Success(w, http.StatusOK, "Investigations retrieved successfully", investigations)
}

// Update edits an investigation record
// @Summary Update an investigation
// @Tags Investigations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Investigation ID"
// @Param request body dto.UpdateInvestigationRequest true "Update Investigation Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/investigations/{id} [put]
func (h *InvestigationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid investigation ID", nil)
		return
	}

	var req dto.UpdateInvestigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	investigation, err := h.investigationUsecase.Update(r.Context(), userIDFromContext(r), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvestigationNotFound:
			response.NotFound(w, "Investigation not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to update investigation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Investigation updated successfully", investigation)
}

// Delete removes an investigation record
// @Summary Delete an investigation
// @Tags Investigations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Investigation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/investigations/{id} [delete]
func (h *InvestigationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid investigation ID", nil)
		return
	}

	if err := h.investigationUsecase.Delete(r.Context(), userIDFromContext(r), id); err != nil {
		switch err {
		case usecase.ErrInvestigationNotFound:
			response.NotFound(w, "Investigation not found")
		default:
			response.InternalServerError(w, "Failed to delete investigation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Investigation deleted successfully", nil)
}
