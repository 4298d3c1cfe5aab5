package handler

import (
	"net/http"

	"homeo-clinic-api/internal/usecase"
	"homeo-clinic-api/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// Overview returns practice-level counts
// @Summary Practice overview report
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /user/reports/overview [get]
func (h *ReportHandler) Overview(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.Overview(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}
