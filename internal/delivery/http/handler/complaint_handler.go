package handler

import (
	"encoding/json"
	"net/http"

	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
	"homeo-clinic-api/internal/usecase"
	"homeo-clinic-api/pkg/response"
	"homeo-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
)

type ComplaintHandler struct {
	complaintUsecase usecase.ComplaintUsecase
	validator        *validator.CustomValidator
}

func NewComplaintHandler(complaintUsecase usecase.ComplaintUsecase, validator *validator.CustomValidator) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUsecase: complaintUsecase,
		validator:        validator,
	}
}

// Create records a new presenting complaint. The complaint number is
// assigned server-side; clients never send one.
// @Summary Record a new complaint
// @Tags Complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateComplaintRequest true "Create Complaint Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /user/new-complaint [post]
func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	complaint, err := h.complaintUsecase.Create(r.Context(), userIDFromContext(r), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrComplaintConflict:
			response.Error(w, http.StatusConflict, "Could not assign complaint number, please retry", nil)
		default:
			response.InternalServerError(w, "Failed to create complaint")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Complaint recorded successfully", complaint)
}

// ListByPatient returns all complaints of one patient in case-record
// order (complaint number ascending)
// @Summary List a patient's complaints
// @Tags Complaints
// @Security BearerAuth
// @Produce json
// @Param patientId path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/complaint/{patientId} [get]
func (h *ComplaintHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	complaints, err := h.complaintUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list complaints")
		}
		return
	}

	response.Success(w, http.StatusOK, "Complaints retrieved successfully", complaints)
}

// List returns a filtered, sorted complaint page across all patients
// @Summary List complaints
// @Tags Complaints
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search over complaint text, location, sensation"
// @Param severity query string false "Filter by severity"
// @Param sortBy query string false "Sort column"
// @Param order query string false "asc or desc"
// @Param dateFrom query string false "Recorded from (YYYY-MM-DD)"
// @Param dateTo query string false "Recorded to, inclusive (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /user/complaints [get]
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	query := dto.ListComplaintsQuery{
		Page:     intQuery(r, "page"),
		Limit:    intQuery(r, "limit"),
		Search:   r.URL.Query().Get("search"),
		Severity: r.URL.Query().Get("severity"),
		SortBy:   r.URL.Query().Get("sortBy"),
		Order:    r.URL.Query().Get("order"),
	}

	filter := &entity.ComplaintFilter{
		Page:     query.Page,
		Limit:    query.Limit,
		Search:   query.Search,
		Severity: query.Severity,
		SortBy:   query.SortBy,
		Order:    query.Order,
		DateFrom: dateQuery(r, "dateFrom"),
		DateTo:   endOfDayQuery(r, "dateTo"),
	}

	complaints, pagination, err := h.complaintUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list complaints")
		return
	}

	response.Paginated(w, http.StatusOK, "Complaints retrieved successfully", complaints, pagination)
}
