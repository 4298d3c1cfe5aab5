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

type FollowUpHandler struct {
	followUpUsecase usecase.FollowUpUsecase
	validator       *validator.CustomValidator
}

func NewFollowUpHandler(followUpUsecase usecase.FollowUpUsecase, validator *validator.CustomValidator) *FollowUpHandler {
	return &FollowUpHandler{
		followUpUsecase: followUpUsecase,
		validator:       validator,
	}
}

// Create records a follow-up visit for a patient
// @Summary Record a follow-up
// @Tags FollowUps
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param patientId path string true "Patient ID"
// @Param request body dto.CreateFollowUpRequest true "Create Follow-Up Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/patients/{patientId}/followups [post]
func (h *FollowUpHandler) Create(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	var req dto.CreateFollowUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	followUp, err := h.followUpUsecase.Create(r.Context(), userIDFromContext(r), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPrescriptionNotFound:
			response.Error(w, http.StatusBadRequest, "Referenced prescription does not exist", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create follow-up")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Follow-up recorded successfully", followUp)
}

// ListByPatient returns all follow-ups for one patient
// @Summary List a patient's follow-ups
// @Tags FollowUps
// @Security BearerAuth
// @Produce json
// @Param patientId path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/patients/{patientId}/followups [get]
func (h *FollowUpHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	followUps, err := h.followUpUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list follow-ups")
		}
		return
	}

	response.Success(w, http.StatusOK, "Follow-ups retrieved successfully", followUps)
}

// Update edits a follow-up record
// @Summary Update a follow-up
// @Tags FollowUps
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Follow-Up ID"
// @Param request body dto.UpdateFollowUpRequest true "Update Follow-Up Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/followups/{id} [put]
func (h *FollowUpHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid follow-up ID", nil)
		return
	}

	var req dto.UpdateFollowUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	followUp, err := h.followUpUsecase.Update(r.Context(), userIDFromContext(r), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrFollowUpNotFound:
			response.NotFound(w, "Follow-up not found")
		case usecase.ErrPrescriptionNotFound:
			response.Error(w, http.StatusBadRequest, "Referenced prescription does not exist", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to update follow-up")
		}
		return
	}

	response.Success(w, http.StatusOK, "Follow-up updated successfully", followUp)
}

// Delete removes a follow-up record
// @Summary Delete a follow-up
// @Tags FollowUps
// @Security BearerAuth
// @Produce json
// @Param id path string true "Follow-Up ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/followups/{id} [delete]
func (h *FollowUpHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid follow-up ID", nil)
		return
	}

	if err := h.followUpUsecase.Delete(r.Context(), userIDFromContext(r), id); err != nil {
		switch err {
		case usecase.ErrFollowUpNotFound:
			response.NotFound(w, "Follow-up not found")
		default:
			response.InternalServerError(w, "Failed to delete follow-up")
		}
		return
	}

	response.Success(w, http.StatusOK, "Follow-up deleted successfully", nil)
}
