package handler

import (
	"encoding/json"
	"net/http"

	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/delivery/http/middleware"
	"homeo-clinic-api/internal/domain/entity"
	"homeo-clinic-api/internal/usecase"
	"homeo-clinic-api/pkg/response"
	"homeo-clinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// Create registers a new patient
// @Summary Register a new patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientRequest true "Create Patient Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /user/new-patient [post]
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), userIDFromContext(r), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientIDExists:
			response.Error(w, http.StatusConflict, "Patient ID already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

// Get returns a single patient by business patient ID
// @Summary Get a patient
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param patientId path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/patients/{patientId} [get]
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	patient, err := h.patientUsecase.GetByPatientID(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// Update edits a patient's demographic fields
// @Summary Update a patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param patientId path string true "Patient ID"
// @Param request body dto.UpdatePatientRequest true "Update Patient Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/patients/{patientId} [put]
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), userIDFromContext(r), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

// List returns a filtered, sorted patient page
// @Summary List patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search over patient ID, name, address"
// @Param sex query string false "Filter by sex"
// @Param sortBy query string false "Sort column"
// @Param order query string false "asc or desc"
// @Param dateFrom query string false "Registered from (YYYY-MM-DD)"
// @Param dateTo query string false "Registered to, inclusive (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /user/patients [get]
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	query := dto.ListPatientsQuery{
		Page:   intQuery(r, "page"),
		Limit:  intQuery(r, "limit"),
		Search: r.URL.Query().Get("search"),
		Sex:    r.URL.Query().Get("sex"),
		SortBy: r.URL.Query().Get("sortBy"),
		Order:  r.URL.Query().Get("order"),
	}

	filter := &entity.PatientFilter{
		Page:     query.Page,
		Limit:    query.Limit,
		Search:   query.Search,
		Sex:      query.Sex,
		SortBy:   query.SortBy,
		Order:    query.Order,
		DateFrom: dateQuery(r, "dateFrom"),
		DateTo:   endOfDayQuery(r, "dateTo"),
	}

	patients, pagination, err := h.patientUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Paginated(w, http.StatusOK, "Patients retrieved successfully", patients, pagination)
}

// userIDFromContext returns the authenticated user for audit trails,
// nil when the route is somehow reached unauthenticated.
func userIDFromContext(r *http.Request) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return nil
	}
	return &userID
}
