package converter

import (
	"homeo-clinic-api/internal/delivery/dto"
	"homeo-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// The case-module converters build a fresh entity from the request and
// the patient reference. Because the upsert is a full replace, the
// resulting entity is exactly what ends up stored: fields absent from
// the request come out as their zero values.

func PhysicalGeneralsFromRequest(req *dto.PhysicalGeneralsRequest, patientID uuid.UUID) *entity.PhysicalGenerals {
	return &entity.PhysicalGenerals{
		CaseModuleBase: entity.CaseModuleBase{PatientID: patientID},
		Build:          req.Build,
		Complexion:     req.Complexion,
		Appetite:       req.Appetite,
		Thirst:         req.Thirst,
		Cravings:       req.Cravings,
		Aversions:      req.Aversions,
		Perspiration:   req.Perspiration,
		Energy:         req.Energy,
		Tongue:         req.Tongue,
		WeightKg:       req.WeightKg,
	}
}

func DigestionFromRequest(req *dto.DigestionRequest, patientID uuid.UUID) *entity.Digestion {
	return &entity.Digestion{
		CaseModuleBase: entity.CaseModuleBase{PatientID: patientID},
		Appetite:       req.Appetite,
		ThirstLevel:    req.ThirstLevel,
		Acidity:        req.Acidity,
		Flatulence:     req.Flatulence,
		Eructations:    req.Eructations,
		Nausea:         req.Nausea,
		BowelHabit:     req.BowelHabit,
		FoodCravings:   req.FoodCravings,
		FoodAversions:  req.FoodAversions,
		Intolerances:   req.Intolerances,
	}
}

func EliminationFromRequest(req *dto.EliminationRequest, patientID uuid.UUID) *entity.Elimination {
	return &entity.Elimination{
		CaseModuleBase: entity.CaseModuleBase{PatientID: patientID},
		Stool: entity.StoolDetail{
			Frequency:   req.Stool.Frequency,
			Consistency: req.Stool.Consistency,
			Odor:        req.Stool.Odor,
			Complaints:  req.Stool.Complaints,
		},
		Urine: entity.UrineDetail{
			Frequency:  req.Urine.Frequency,
			Color:      req.Urine.Color,
			Odor:       req.Urine.Odor,
			Complaints: req.Urine.Complaints,
		},
		Discharges: entity.DischargeDetail{
			Type:       req.Discharges.Type,
			Color:      req.Discharges.Color,
			Character:  req.Discharges.Character,
			Complaints: req.Discharges.Complaints,
		},
		Sweat: req.Sweat,
	}
}

func SleepDreamsFromRequest(req *dto.SleepDreamsRequest, patientID uuid.UUID) *entity.SleepDreams {
	return &entity.SleepDreams{
		CaseModuleBase:    entity.CaseModuleBase{PatientID: patientID},
		Quality:           req.Quality,
		Position:          req.Position,
		TimeToFallAsleep:  req.TimeToFallAsleep,
		WakingTime:        req.WakingTime,
		RefreshedOnWaking: req.RefreshedOnWaking,
		Snoring:           req.Snoring,
		Dreams:            req.Dreams,
		DreamThemes:       req.DreamThemes,
	}
}

func SexualFunctionFromRequest(req *dto.SexualFunctionRequest, patientID uuid.UUID) *entity.SexualFunction {
	return &entity.SexualFunction{
		CaseModuleBase: entity.CaseModuleBase{PatientID: patientID},
		Desire:         req.Desire,
		Function:       req.Function,
		Disorders:      req.Disorders,
		History:        req.History,
	}
}

func MenstrualHistoryFromRequest(req *dto.MenstrualHistoryRequest, patientID uuid.UUID) *entity.MenstrualHistory {
	return &entity.MenstrualHistory{
		CaseModuleBase:       entity.CaseModuleBase{PatientID: patientID},
		MenarcheAge:          req.MenarcheAge,
		CycleLengthDays:      req.CycleLengthDays,
		DurationDays:         req.DurationDays,
		Flow:                 req.Flow,
		Regularity:           req.Regularity,
		LastMenstrualPeriod:  req.LastMenstrualPeriod,
		Pain:                 req.Pain,
		PremenstrualSymptoms: req.PremenstrualSymptoms,
		Menopause:            req.Menopause,
		MenopauseAge:         req.MenopauseAge,
	}
}

func HistoryFromRequest(req *dto.HistoryRequest, patientID uuid.UUID) *entity.History {
	return &entity.History{
		CaseModuleBase:  entity.CaseModuleBase{PatientID: patientID},
		PastIllnesses:   req.PastIllnesses,
		SurgicalHistory: req.SurgicalHistory,
		Medications:     req.Medications,
		Allergies:       req.Allergies,
		Vaccinations:    req.Vaccinations,
		FamilyHistory:   req.FamilyHistory,
	}
}

func ThermalModalitiesFromRequest(req *dto.ThermalModalitiesRequest, patientID uuid.UUID) *entity.ThermalModalities {
	return &entity.ThermalModalities{
		CaseModuleBase:     entity.CaseModuleBase{PatientID: patientID},
		ThermalReaction:    req.ThermalReaction,
		SeasonPreference:   req.SeasonPreference,
		WeatherAggravation: req.WeatherAggravation,
		BathingPreference:  req.BathingPreference,
		CoveringPreference: req.CoveringPreference,
		FanIntolerance:     req.FanIntolerance,
	}
}
