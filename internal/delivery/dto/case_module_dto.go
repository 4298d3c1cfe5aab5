package dto

// Request DTOs for the eight one-to-one case modules. Every PUT carries
// the complete module payload: the stored record is fully replaced, so
// omitted fields are cleared, never preserved.

type PhysicalGeneralsRequest struct {
	Build        string `json:"build" validate:"omitempty,max=100"`
	Complexion   string `json:"complexion" validate:"omitempty,max=100"`
	Appetite     string `json:"appetite"`
	Thirst       string `json:"thirst"`
	Cravings     string `json:"cravings"`
	Aversions    string `json:"aversions"`
	Perspiration string `json:"perspiration"`
	Energy       string `json:"energy" validate:"omitempty,max=100"`
	Tongue       string `json:"tongue" validate:"omitempty,max=255"`
	WeightKg     int    `json:"weight_kg" validate:"omitempty,gte=0,lte=500"`
}

type DigestionRequest struct {
	Appetite      string `json:"appetite" validate:"omitempty,max=100"`
	ThirstLevel   int    `json:"thirst_level" validate:"omitempty,gte=0,lte=10"`
	Acidity       string `json:"acidity" validate:"omitempty,max=100"`
	Flatulence    string `json:"flatulence" validate:"omitempty,max=100"`
	Eructations   string `json:"eructations" validate:"omitempty,max=100"`
	Nausea        string `json:"nausea" validate:"omitempty,max=100"`
	BowelHabit    string `json:"bowel_habit" validate:"omitempty,max=255"`
	FoodCravings  string `json:"food_cravings"`
	FoodAversions string `json:"food_aversions"`
	Intolerances  string `json:"intolerances"`
}

type StoolDetailRequest struct {
	Frequency   string `json:"frequency" validate:"omitempty,max=100"`
	Consistency string `json:"consistency" validate:"omitempty,max=100"`
	Odor        string `json:"odor" validate:"omitempty,max=100"`
	Complaints  string `json:"complaints"`
}

type UrineDetailRequest struct {
	Frequency  string `json:"frequency" validate:"omitempty,max=100"`
	Color      string `json:"color" validate:"omitempty,max=100"`
	Odor       string `json:"odor" validate:"omitempty,max=100"`
	Complaints string `json:"complaints"`
}

type DischargeDetailRequest struct {
	Type       string `json:"type" validate:"omitempty,max=100"`
	Color      string `json:"color" validate:"omitempty,max=100"`
	Character  string `json:"character" validate:"omitempty,max=255"`
	Complaints string `json:"complaints"`
}

type EliminationRequest struct {
	Stool      StoolDetailRequest     `json:"stool"`
	Urine      UrineDetailRequest     `json:"urine"`
	Discharges DischargeDetailRequest `json:"discharges"`
	Sweat      string                 `json:"sweat"`
}

type SleepDreamsRequest struct {
	Quality           string `json:"quality" validate:"omitempty,max=100"`
	Position          string `json:"position" validate:"omitempty,max=100"`
	TimeToFallAsleep  string `json:"time_to_fall_asleep" validate:"omitempty,max=100"`
	WakingTime        string `json:"waking_time" validate:"omitempty,max=100"`
	RefreshedOnWaking bool   `json:"refreshed_on_waking"`
	Snoring           bool   `json:"snoring"`
	Dreams            string `json:"dreams"`
	DreamThemes       string `json:"dream_themes"`
}

type SexualFunctionRequest struct {
	Desire    string `json:"desire" validate:"omitempty,max=100"`
	Function  string `json:"function"`
	Disorders string `json:"disorders"`
	History   string `json:"history"`
}

type MenstrualHistoryRequest struct {
	MenarcheAge          int    `json:"menarche_age" validate:"omitempty,gte=0,lte=25"`
	CycleLengthDays      int    `json:"cycle_length_days" validate:"omitempty,gte=0,lte=120"`
	DurationDays         int    `json:"duration_days" validate:"omitempty,gte=0,lte=60"`
	Flow                 string `json:"flow" validate:"omitempty,max=100"`
	Regularity           string `json:"regularity" validate:"omitempty,max=100"`
	LastMenstrualPeriod  string `json:"last_menstrual_period" validate:"omitempty,datetime=2006-01-02"`
	Pain                 string `json:"pain"`
	PremenstrualSymptoms string `json:"premenstrual_symptoms"`
	Menopause            bool   `json:"menopause"`
	MenopauseAge         int    `json:"menopause_age" validate:"omitempty,gte=0,lte=120"`
}

type HistoryRequest struct {
	PastIllnesses   string `json:"past_illnesses"`
	SurgicalHistory string `json:"surgical_history"`
	Medications     string `json:"medications"`
	Allergies       string `json:"allergies"`
	Vaccinations    string `json:"vaccinations"`
	FamilyHistory   string `json:"family_history"`
}

type ThermalModalitiesRequest struct {
	ThermalReaction    string `json:"thermal_reaction" validate:"omitempty,oneof=Chilly Hot Ambithermal"`
	SeasonPreference   string `json:"season_preference" validate:"omitempty,max=100"`
	WeatherAggravation string `json:"weather_aggravation"`
	BathingPreference  string `json:"bathing_preference" validate:"omitempty,max=100"`
	CoveringPreference string `json:"covering_preference" validate:"omitempty,max=100"`
	FanIntolerance     bool   `json:"fan_intolerance"`
}
