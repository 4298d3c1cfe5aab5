package converter

import (
	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
)

// ComplaintToResponse converts a Complaint entity to ComplaintResponse DTO
func ComplaintToResponse(complaint *entity.Complaint) *dto.ComplaintResponse {
	if complaint == nil {
		return nil
	}

	return &dto.ComplaintResponse{
		ID:            complaint.ID,
		PatientID:     complaint.PatientID,
		ComplaintNo:   complaint.ComplaintNo,
		ComplaintText: complaint.ComplaintText,
		Location:      complaint.Location,
		Sensation:     complaint.Sensation,
		Concomitants:  complaint.Concomitants,
		Onset:         complaint.Onset,
		Aggravation:   complaint.Aggravation,
		Amelioration:  complaint.Amelioration,
		Duration:      complaint.Duration,
		Severity:      complaint.Severity,
		CreatedAt:     complaint.CreatedAt,
	}
}

// ComplaintsToResponses converts a slice of Complaint entities to response DTOs
func ComplaintsToResponses(complaints []entity.Complaint) []dto.ComplaintResponse {
	responses := make([]dto.ComplaintResponse, len(complaints))
	for i := range complaints {
		responses[i] = *ComplaintToResponse(&complaints[i])
	}
	return responses
}
