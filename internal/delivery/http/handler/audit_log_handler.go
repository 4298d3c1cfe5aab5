package handler

import (
	"net/http"

	"homeo-clinic-api/internal/usecase"
	"homeo-clinic-api/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// List returns the audit trail, newest first
// @Summary List audit logs
// @Tags AuditLogs
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /user/audit-logs [get]
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, pagination, err := h.auditLogUsecase.List(r.Context(), intQuery(r, "page"), intQuery(r, "limit"))
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.Paginated(w, http.StatusOK, "Audit logs retrieved successfully", logs, pagination)
}
