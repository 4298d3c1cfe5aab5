package converter

import (
	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"
)

// MedicinesFromRequests converts medicine request entries to the stored list
func MedicinesFromRequests(reqs []dto.MedicineRequest) entity.MedicineList {
	medicines := make(entity.MedicineList, len(reqs))
	for i, req := range reqs {
		medicines[i] = entity.Medicine{
			Name:      req.Name,
			Potency:   req.Potency,
			Dosage:    req.Dosage,
			Frequency: req.Frequency,
		}
	}
	return medicines
}

// PrescriptionToResponse converts a Prescription entity to PrescriptionResponse DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:            prescription.ID,
		PatientID:     prescription.PatientID,
		Medicines:     prescription.Medicines,
		Reason:        prescription.Reason,
		FollowUpNotes: prescription.FollowUpNotes,
		Date:          prescription.Date,
		NextVisit:     prescription.NextVisit,
		CreatedAt:     prescription.CreatedAt,
		UpdatedAt:     prescription.UpdatedAt,
	}
}

// PrescriptionsToResponses converts a slice of Prescription entities to response DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i])
	}
	return responses
}
