package converter

import (
	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
)

// FollowUpToResponse converts a FollowUp entity to FollowUpResponse DTO
func FollowUpToResponse(followUp *entity.FollowUp) *dto.FollowUpResponse {
	if followUp == nil {
		return nil
	}

	return &dto.FollowUpResponse{
		ID:             followUp.ID,
		PatientID:      followUp.PatientID,
		PrescriptionID: followUp.PrescriptionID,
		Date:           followUp.Date,
		PatientState:   followUp.PatientState,
		Assessment:     followUp.Assessment,
		NextVisitDate:  followUp.NextVisitDate,
		CreatedAt:      followUp.CreatedAt,
		UpdatedAt:      followUp.UpdatedAt,
	}
}

// FollowUpsToResponses converts a slice of FollowUp entities to response DTOs
func FollowUpsToResponses(followUps []entity.FollowUp) []dto.FollowUpResponse {
	responses := make([]dto.FollowUpResponse, len(followUps))
	for i := range followUps {
		responses[i] = *FollowUpToResponse(&followUps[i])
	}
	return responses
}
