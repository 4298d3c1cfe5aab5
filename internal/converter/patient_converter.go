package converter

import (
	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:            patient.ID,
		PatientID:     patient.PatientID,
		Name:          patient.Name,
		Age:           patient.Age,
		Sex:           patient.Sex,
		MaritalStatus: patient.MaritalStatus,
		Diet:          patient.Diet,
		Education:     patient.Education,
		Occupation:    patient.Occupation,
		Address:       patient.Address,
		Summary:       patient.Summary,
		ReferredBy:    patient.ReferredBy,
		MobileNo:      patient.MobileNo,
		CreatedAt:     patient.CreatedAt,
		UpdatedAt:     patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
