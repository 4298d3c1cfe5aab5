package converter

import (
	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
)

// LabResultsFromRequests converts lab result request entries to the stored list
func LabResultsFromRequests(reqs []dto.LabResultRequest) entity.LabResultList {
	if len(reqs) == 0 {
		return nil
	}
	results := make(entity.LabResultList, len(reqs))
	for i, req := range reqs {
		results[i] = entity.LabResult{
			Name:           req.Name,
			Value:          req.Value,
			Unit:           req.Unit,
			ReferenceRange: req.ReferenceRange,
		}
	}
	return results
}

// InvestigationToResponse converts an Investigation entity to InvestigationResponse DTO
func InvestigationToResponse(investigation *entity.Investigation) *dto.InvestigationResponse {
	if investigation == nil {
		return nil
	}

	return &dto.InvestigationResponse{
		ID:         investigation.ID,
		PatientID:  investigation.PatientID,
		Date:       investigation.Date,
		Type:       investigation.Type,
		Hb:         investigation.Hb,
		WBC:        investigation.WBC,
		ESR:        investigation.ESR,
		BloodSugar: investigation.BloodSugar,
		ReportText: investigation.ReportText,
		Results:    investigation.Results,
		Summary:    investigation.Summary,
		CreatedAt:  investigation.CreatedAt,
		UpdatedAt:  investigation.UpdatedAt,
	}
}

// InvestigationsToResponses converts a slice of Investigation entities to response DTOs
func InvestigationsToResponses(investigations []entity.Investigation) []dto.InvestigationResponse {
	responses := make([]dto.InvestigationResponse, len(investigations))
	for i := range investigations {
		responses[i] = *InvestigationToResponse(&investigations[i])
	}
	return responses
}
